package products

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/lib"
	"maizonmarie_server/structs"
)

// FetchAllProducts handles GET /products: the full catalog in insertion order.
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	products := prm.catalogService.Products()

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id}.
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.productIdRequired"),
			gecho.Send(),
		)
		return
	}

	product := prm.catalogService.FindProduct(id)
	if product == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.products.notFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product":   product,
			"orderable": len(product.PriceOptions) > 0,
		}),
		gecho.Send(),
	)
}

// FetchSpecialProducts handles GET /products/special: the hero sub-list.
func (prm *ProductRoutesManager) FetchSpecialProducts(w http.ResponseWriter, r *http.Request) {
	prm.respondWithPartition(w, prm.viewService.SpecialProducts(), prm.catalogService.Settings().ShowSpecialProducts)
}

// FetchRegularProducts handles GET /products/regular: the collection grid sub-list.
func (prm *ProductRoutesManager) FetchRegularProducts(w http.ResponseWriter, r *http.Request) {
	prm.respondWithPartition(w, prm.viewService.RegularProducts(), true)
}

func (prm *ProductRoutesManager) respondWithPartition(w http.ResponseWriter, products []structs.Product, visible bool) {
	// First option is the default selection the storefront prices cards with.
	prices := make(map[string]string, len(products))
	for i := range products {
		if opt := products[i].DefaultOption(); opt != nil {
			prices[products[i].ID] = lib.FormatPrice(opt.Price)
		}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":      products,
			"count":         len(products),
			"visible":       visible,
			"displayPrices": prices,
		}),
		gecho.Send(),
	)
}
