package lib

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are whole naira; en-NG gives the grouping the storefront renders.
var pricePrinter = message.NewPrinter(language.MustParse("en-NG"))

// FormatPrice renders an integer price with the naira sign and locale-aware
// thousands separators, e.g. 15000 -> "₦15,000".
func FormatPrice(price uint64) string {
	return pricePrinter.Sprintf("₦%d", price)
}
