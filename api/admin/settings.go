package admin

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/lib"
	"maizonmarie_server/structs"
)

// ToggleSection handles POST /admin/settings/sections/{key}/toggle: flips one of
// the four storefront visibility switches and returns the full settings.
func (arm *AdminRoutesManager) ToggleSection(w http.ResponseWriter, r *http.Request) {
	key := structs.SectionKey(chi.URLParam(r, "key"))

	settings, err := arm.catalogService.ToggleSection(r.Context(), key)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.settings.unknownSection"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to toggle section", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to update the settings. Please try again"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"settings": settings}),
		gecho.Send(),
	)
}

type updateLogoRequest struct {
	URL string `json:"url" validate:"required"`
}

// UpdateLogo handles PUT /admin/settings/logo.
func (arm *AdminRoutesManager) UpdateLogo(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[updateLogoRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please provide a logo URL and try again"),
			gecho.Send(),
		)
		return
	}

	settings := arm.catalogService.UpdateLogo(r.Context(), body.URL)

	gecho.Success(w,
		gecho.WithData(map[string]any{"settings": settings}),
		gecho.Send(),
	)
}

type setTimeSlotsRequest struct {
	TimeSlots []string `json:"timeSlots" validate:"required,dive,required"`
}

// SetTimeSlots handles PUT /admin/settings/time-slots: replaces the bookable
// session hours wholesale.
func (arm *AdminRoutesManager) SetTimeSlots(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[setTimeSlotsRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please provide at least the time slot list and try again"),
			gecho.Send(),
		)
		return
	}

	settings := arm.catalogService.SetTimeSlots(r.Context(), body.TimeSlots)

	gecho.Success(w,
		gecho.WithData(map[string]any{"settings": settings}),
		gecho.Send(),
	)
}
