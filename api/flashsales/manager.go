package flashsales

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/services"
)

type FlashSaleRoutesManager struct {
	logger           *gecho.Logger
	flashSaleService *services.FlashSaleService
}

func NewFlashSaleRoutesManager(
	logger *gecho.Logger,
	flashSaleService *services.FlashSaleService,
) *FlashSaleRoutesManager {
	return &FlashSaleRoutesManager{
		logger:           logger,
		flashSaleService: flashSaleService,
	}
}

func (frm *FlashSaleRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/flash-sales/active", frm.FetchActiveSale)
	r.Get("/flash-sales/active/countdown", frm.StreamActiveCountdown)
}
