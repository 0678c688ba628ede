package flashsales

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// StreamActiveCountdown handles GET /flash-sales/active/countdown as a server-sent
// event stream: one tick per second while the banner is displayed. The stream ends
// when the client disconnects (request context cancellation stops the ticker, so no
// tick fires after teardown) or when the sale stops being displayable.
func (frm *FlashSaleRoutesManager) StreamActiveCountdown(w http.ResponseWriter, r *http.Request) {
	sale, _ := frm.flashSaleService.ActiveSale(time.Now())
	if sale == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.flashSales.noneActive"),
			gecho.Send(),
		)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.flashSales.streamingUnsupported"),
			gecho.Send(),
		)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for tick := range frm.flashSaleService.StreamCountdown(r.Context(), sale.ID) {
		payload, err := json.Marshal(tick)
		if err != nil {
			frm.logger.Error("Failed to encode countdown tick", gecho.Field("error", err))
			return
		}

		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return
		}
		flusher.Flush()

		if tick.Remaining.Expired() {
			// Countdown saturated; the sale stays active until an operator flips it,
			// but the banner has nothing left to count.
			return
		}
	}
}
