package admin

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/lib"
	"maizonmarie_server/structs"
)

type addFlashSaleRequest struct {
	ProductID string `json:"productId"`
}

// AddFlashSale handles POST /admin/flash-sales: creates a sale with the configured
// default prices and window. An empty productId targets the first catalog product.
func (arm *AdminRoutesManager) AddFlashSale(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[addFlashSaleRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the sale information and try again"),
			gecho.Send(),
		)
		return
	}

	sale := arm.flashSaleService.AddSale(r.Context(), body.ProductID)

	gecho.Success(w,
		gecho.WithMessage("Flash sale created"),
		gecho.WithData(map[string]any{"sale": sale}),
		gecho.Send(),
	)
}

// UpdateFlashSale handles PATCH /admin/flash-sales/{id}: applies only the fields
// present in the body, leaving the rest of the sale untouched.
func (arm *AdminRoutesManager) UpdateFlashSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	patch, err := lib.ExtractAndValidateBody[structs.FlashSalePatch](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the sale information and try again"),
			gecho.Send(),
		)
		return
	}

	sale, err := arm.flashSaleService.UpdateSale(r.Context(), id, *patch)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.flashSales.notFound"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to update flash sale", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to update the sale. Please try again"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Flash sale updated"),
		gecho.WithData(map[string]any{"sale": sale}),
		gecho.Send(),
	)
}

// DeleteFlashSale handles DELETE /admin/flash-sales/{id}; an absent sale is a no-op.
func (arm *AdminRoutesManager) DeleteFlashSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed := arm.flashSaleService.RemoveSale(r.Context(), id)

	gecho.Success(w,
		gecho.WithMessage("Flash sale removed"),
		gecho.WithData(map[string]any{"removed": removed}),
		gecho.Send(),
	)
}
