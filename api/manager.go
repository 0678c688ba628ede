package api

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/api/admin"
	"maizonmarie_server/api/cart"
	"maizonmarie_server/api/flashsales"
	"maizonmarie_server/api/health"
	"maizonmarie_server/api/products"
	"maizonmarie_server/api/site"
	"maizonmarie_server/services"
)

type routerManager struct {
	productRoutes   *products.ProductRoutesManager
	siteRoutes      *site.SiteRoutesManager
	flashSaleRoutes *flashsales.FlashSaleRoutesManager
	cartRoutes      *cart.CartRoutesManager
	adminRoutes     *admin.AdminRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager) *routerManager {
	return &routerManager{
		productRoutes:   products.NewProductRoutesManager(logger, sm.CatalogService, sm.ViewService),
		siteRoutes:      site.NewSiteRoutesManager(logger, sm.CatalogService, sm.ViewService, sm.BookingService),
		flashSaleRoutes: flashsales.NewFlashSaleRoutesManager(logger, sm.FlashSaleService),
		cartRoutes:      cart.NewCartRoutesManager(logger, sm.CartService, sm.CatalogService, sm.FlashSaleService),
		adminRoutes:     admin.NewAdminRoutesManager(logger, sm.CatalogService, sm.FlashSaleService),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.siteRoutes.RegisterRoutes(r)
	rm.flashSaleRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
