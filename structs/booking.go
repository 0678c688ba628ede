package structs

import "time"

// BookingRequest is the appointment form payload. Bookings are never stored; the
// submission only drives the cosmetic "received" display state.
type BookingRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time"`
}

// BookingStatus is the current display state of the booking form.
type BookingStatus struct {
	Received           bool       `json:"received"`
	ReceivedUntil      *time.Time `json:"receivedUntil,omitempty"`
	AvailableTimeSlots []string   `json:"availableTimeSlots"`
}
