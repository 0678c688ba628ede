package products

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/services"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	viewService    *services.ViewService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	viewService *services.ViewService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		viewService:    viewService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.FetchAllProducts)
	r.Get("/products/special", prm.FetchSpecialProducts)
	r.Get("/products/regular", prm.FetchRegularProducts)
	r.Get("/products/{id}", prm.FetchProductByID)
}
