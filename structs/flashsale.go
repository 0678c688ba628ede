package structs

import "time"

// FlashSale is a promotional entry referencing one product. Active is an operator
// switch: it is never flipped automatically when EndTime elapses, the countdown just
// saturates at zero until someone deactivates the sale.
type FlashSale struct {
	ID              string    `json:"id"`
	Active          bool      `json:"active"`
	ProductID       string    `json:"productId"`
	OriginalPrice   uint64    `json:"originalPrice"`
	DiscountedPrice uint64    `json:"discountedPrice"`
	EndTime         time.Time `json:"endTime"`
}

// Countdown is the remaining time of a sale, clamped at zero once expired.
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Expired reports whether the countdown has saturated.
func (c Countdown) Expired() bool {
	return c.Hours == 0 && c.Minutes == 0 && c.Seconds == 0
}

// FlashSalePatch carries the updatable sale fields; nil means leave unchanged.
type FlashSalePatch struct {
	Active          *bool      `json:"active,omitempty"`
	ProductID       *string    `json:"productId,omitempty"`
	OriginalPrice   *uint64    `json:"originalPrice,omitempty"`
	DiscountedPrice *uint64    `json:"discountedPrice,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
}
