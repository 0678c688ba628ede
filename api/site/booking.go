package site

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/lib"
	"maizonmarie_server/structs"
)

// GetBookingStatus handles GET /booking: the form's display state and offered hours.
func (srm *SiteRoutesManager) GetBookingStatus(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(srm.bookingService.Status()),
		gecho.Send(),
	)
}

// SubmitBooking handles POST /booking. A submission without a selected time slot is
// blocked with a user-facing notice; valid submissions flip the form into the
// auto-reverting "received" state. Nothing is stored.
func (srm *SiteRoutesManager) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.BookingRequest](r)
	if err != nil {
		srm.logger.Debug("Failed to extract and validate booking body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the session request and try again"),
			gecho.Send(),
		)
		return
	}

	if err := srm.bookingService.Submit(*body); err != nil {
		if errors.Is(err, lib.ErrTimeSlotRequired) || errors.Is(err, lib.ErrUnknownTimeSlot) {
			gecho.BadRequest(w,
				gecho.WithMessage("Please select a preferred artistry session time"),
				gecho.Send(),
			)
			return
		}
		srm.logger.Error("Failed to submit booking", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to submit the session request. Please try again"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Received. The Atelier Concierge will reach out shortly"),
		gecho.WithData(srm.bookingService.Status()),
		gecho.Send(),
	)
}
