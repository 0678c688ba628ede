package flashsales

import (
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/lib"
	"maizonmarie_server/services"
)

// FetchActiveSale handles GET /flash-sales/active: the single surfaced sale (first
// effectively active entry in list order), its product, and the clamped countdown.
func (frm *FlashSaleRoutesManager) FetchActiveSale(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	sale, product := frm.flashSaleService.ActiveSale(now)
	if sale == nil {
		gecho.Success(w,
			gecho.WithData(map[string]any{
				"active": false,
			}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"active":    true,
			"sale":      sale,
			"product":   product,
			"remaining": services.Remaining(*sale, now),
			"display": map[string]string{
				"originalPrice":   lib.FormatPrice(sale.OriginalPrice),
				"discountedPrice": lib.FormatPrice(sale.DiscountedPrice),
			},
		}),
		gecho.Send(),
	)
}
