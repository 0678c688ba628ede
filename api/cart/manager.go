package cart

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/services"
)

type CartRoutesManager struct {
	logger           *gecho.Logger
	cartService      *services.CartService
	catalogService   *services.CatalogService
	flashSaleService *services.FlashSaleService
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	catalogService *services.CatalogService,
	flashSaleService *services.FlashSaleService,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:           logger,
		cartService:      cartService,
		catalogService:   catalogService,
		flashSaleService: flashSaleService,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Post("/", crm.CreateCart)
		r.Get("/{cartID}", crm.FetchCart)
		r.Post("/{cartID}/items", crm.AddItem)
		r.Post("/{cartID}/items/flash-sale", crm.AddFlashSaleItem)
		r.Delete("/{cartID}/items/{itemID}", crm.RemoveItem)
		r.Put("/{cartID}/items/{itemID}/size", crm.ChangeItemSize)
	})
}
