package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/lib"
	"maizonmarie_server/structs"
)

// CreateProduct handles POST /admin/products: adds a new catalog entry, minting
// ids for the product and any blank option ids in the draft.
func (arm *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	draft, err := lib.ExtractAndValidateBody[structs.Product](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the product information and try again"),
			gecho.WithData(map[string]string{"details": err.Error()}),
			gecho.Send(),
		)
		return
	}

	product := arm.catalogService.CreateProduct(r.Context(), *draft)

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

// SaveProduct handles PUT /admin/products: replaces the product whose id matches,
// or appends it when no product carries that id.
func (arm *AdminRoutesManager) SaveProduct(w http.ResponseWriter, r *http.Request) {
	draft, err := lib.ExtractAndValidateBody[structs.Product](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the product information and try again"),
			gecho.WithData(map[string]string{"details": err.Error()}),
			gecho.Send(),
		)
		return
	}

	product, inserted := arm.catalogService.UpsertProduct(r.Context(), *draft)

	gecho.Success(w,
		gecho.WithMessage("Product saved"),
		gecho.WithData(map[string]any{
			"product":  product,
			"inserted": inserted,
		}),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /admin/products/{id}?confirm=true. Without the
// confirm flag nothing is deleted. Flash sales referencing the product are left in
// place; they simply stop surfacing on the storefront.
func (arm *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	deleted, err := arm.catalogService.DeleteProduct(r.Context(), id, confirmed)
	if err != nil {
		if errors.Is(err, lib.ErrNotConfirmed) {
			gecho.BadRequest(w,
				gecho.WithMessage("Deletion requires confirm=true"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to delete product", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to delete the product. Please try again"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.WithData(map[string]any{"deleted": deleted}),
		gecho.Send(),
	)
}
