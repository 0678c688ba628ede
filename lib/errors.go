package lib

import "errors"

// Store errors
var (
	ErrNotFound     = errors.New("not found")
	ErrNotConfirmed = errors.New("destructive action not confirmed")
)

// Cart errors
var (
	ErrCartNotFound = errors.New("cart not found")
)

// Booking errors
var (
	ErrTimeSlotRequired = errors.New("a session time slot must be selected")
	ErrUnknownTimeSlot  = errors.New("time slot is not offered")
)

// Media errors
var (
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrEmptyUpload      = errors.New("uploaded file is empty")
)
