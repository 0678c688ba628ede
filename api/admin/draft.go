package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/lib"
	"maizonmarie_server/services"
	"maizonmarie_server/structs"
)

// The draft endpoints operate on an unsaved product carried in the request body.
// They never touch the catalog: the caller keeps posting the evolving draft back
// and commits it through CreateProduct or SaveProduct when done.

type draftRequest struct {
	Draft structs.Product `json:"draft"`
}

type draftOptionRequest struct {
	Draft    structs.Product `json:"draft"`
	OptionID string          `json:"optionId" validate:"required"`
}

type draftOptionSizeRequest struct {
	Draft    structs.Product `json:"draft"`
	OptionID string          `json:"optionId" validate:"required"`
	Size     string          `json:"size" validate:"required"`
}

type draftOptionPriceRequest struct {
	Draft    structs.Product `json:"draft"`
	OptionID string          `json:"optionId" validate:"required"`
	Price    uint64          `json:"price"`
}

type draftImageRequest struct {
	Draft structs.Product `json:"draft"`
	URL   string          `json:"url" validate:"required"`
}

type draftImageIndexRequest struct {
	Draft structs.Product `json:"draft"`
	Index int             `json:"index"`
}

func respondDraft(w http.ResponseWriter, draft structs.Product) {
	gecho.Success(w,
		gecho.WithData(map[string]any{"draft": draft}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) respondDraftError(w http.ResponseWriter, err error) {
	arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
	gecho.BadRequest(w,
		gecho.WithMessage("Please check the draft information and try again"),
		gecho.Send(),
	)
}

// DraftAddPriceOption appends a fresh placeholder size tier to the draft.
func (arm *AdminRoutesManager) DraftAddPriceOption(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[draftRequest](r)
	if err != nil {
		arm.respondDraftError(w, err)
		return
	}
	respondDraft(w, services.AddPriceOption(body.Draft))
}

// DraftRemovePriceOption drops the named option; an unknown id is a no-op.
func (arm *AdminRoutesManager) DraftRemovePriceOption(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[draftOptionRequest](r)
	if err != nil {
		arm.respondDraftError(w, err)
		return
	}
	respondDraft(w, services.RemovePriceOption(body.Draft, body.OptionID))
}

// DraftUpdateOptionSize relabels one size tier.
func (arm *AdminRoutesManager) DraftUpdateOptionSize(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[draftOptionSizeRequest](r)
	if err != nil {
		arm.respondDraftError(w, err)
		return
	}
	respondDraft(w, services.UpdatePriceOptionSize(body.Draft, body.OptionID, body.Size))
}

// DraftUpdateOptionPrice reprices one size tier.
func (arm *AdminRoutesManager) DraftUpdateOptionPrice(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[draftOptionPriceRequest](r)
	if err != nil {
		arm.respondDraftError(w, err)
		return
	}
	respondDraft(w, services.UpdatePriceOptionPrice(body.Draft, body.OptionID, body.Price))
}

// DraftAddImage prepends an image URL so the newest upload becomes the primary.
func (arm *AdminRoutesManager) DraftAddImage(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[draftImageRequest](r)
	if err != nil {
		arm.respondDraftError(w, err)
		return
	}
	respondDraft(w, services.AddProductImage(body.Draft, body.URL))
}

// DraftRemoveImage drops the image at the given index; out of range is a no-op.
func (arm *AdminRoutesManager) DraftRemoveImage(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[draftImageIndexRequest](r)
	if err != nil {
		arm.respondDraftError(w, err)
		return
	}
	respondDraft(w, services.RemoveProductImage(body.Draft, body.Index))
}
