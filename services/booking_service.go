package services

import (
	"sync"
	"time"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/lib"
	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

// BookingService handles the appointment form. Bookings are never stored anywhere:
// a valid submission only flips the form into a "received" display state that
// reverts automatically after the configured window. The revert timer is owned by
// the service and cancelled on shutdown so it cannot fire into a torn-down server.
type BookingService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	state  *state.State

	mu            sync.Mutex
	received      bool
	receivedUntil time.Time
	revert        *time.Timer
}

func NewBookingService(logger *gecho.Logger, cfg *structs.Config, st *state.State) *BookingService {
	return &BookingService{
		logger: logger,
		cfg:    cfg,
		state:  st,
	}
}

// Submit validates the appointment request. A missing time slot blocks the
// submission synchronously with a user-facing error; nothing is reset. A slot that
// is not on the offered list is rejected the same way.
func (bs *BookingService) Submit(req structs.BookingRequest) error {
	if req.Time == "" {
		return lib.ErrTimeSlotRequired
	}

	settings := bs.state.Settings()
	if !settings.HasTimeSlot(req.Time) {
		return lib.ErrUnknownTimeSlot
	}

	window := bs.cfg.Booking.ConfirmationWindow

	bs.mu.Lock()
	defer bs.mu.Unlock()

	if bs.revert != nil {
		bs.revert.Stop()
	}
	bs.received = true
	bs.receivedUntil = time.Now().Add(window)
	bs.revert = time.AfterFunc(window, func() {
		bs.mu.Lock()
		bs.received = false
		bs.mu.Unlock()
	})

	bs.logger.Info("Session request received",
		gecho.Field("date", req.Date),
		gecho.Field("time", req.Time),
	)
	return nil
}

// Status reports the current display state and the bookable hours.
func (bs *BookingService) Status() structs.BookingStatus {
	settings := bs.state.Settings()

	bs.mu.Lock()
	defer bs.mu.Unlock()

	status := structs.BookingStatus{
		Received:           bs.received,
		AvailableTimeSlots: settings.AvailableTimeSlots,
	}
	if bs.received {
		until := bs.receivedUntil
		status.ReceivedUntil = &until
	}
	return status
}

// Close cancels a pending revert timer.
func (bs *BookingService) Close() {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if bs.revert != nil {
		bs.revert.Stop()
		bs.revert = nil
	}
}
