package admin

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/services"
)

type AdminRoutesManager struct {
	logger           *gecho.Logger
	catalogService   *services.CatalogService
	flashSaleService *services.FlashSaleService
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	flashSaleService *services.FlashSaleService,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:           logger,
		catalogService:   catalogService,
		flashSaleService: flashSaleService,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/products", arm.CreateProduct)
		r.Put("/products", arm.SaveProduct)
		r.Delete("/products/{id}", arm.DeleteProduct)

		r.Post("/products/draft/options", arm.DraftAddPriceOption)
		r.Post("/products/draft/options/remove", arm.DraftRemovePriceOption)
		r.Post("/products/draft/options/size", arm.DraftUpdateOptionSize)
		r.Post("/products/draft/options/price", arm.DraftUpdateOptionPrice)
		r.Post("/products/draft/images", arm.DraftAddImage)
		r.Post("/products/draft/images/remove", arm.DraftRemoveImage)

		r.Post("/gallery", arm.UploadGalleryItem)
		r.Delete("/gallery/{id}", arm.DeleteGalleryItem)

		r.Post("/settings/sections/{key}/toggle", arm.ToggleSection)
		r.Put("/settings/logo", arm.UpdateLogo)
		r.Put("/settings/time-slots", arm.SetTimeSlots)

		r.Post("/flash-sales", arm.AddFlashSale)
		r.Patch("/flash-sales/{id}", arm.UpdateFlashSale)
		r.Delete("/flash-sales/{id}", arm.DeleteFlashSale)
	})
}
