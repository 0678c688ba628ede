package services

import (
	"context"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/persistence"
	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

type ServiceManager struct {
	CatalogService   *CatalogService
	FlashSaleService *FlashSaleService
	CartService      *CartService
	ViewService      *ViewService
	BookingService   *BookingService
	HealthService    *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, st *state.State, gateway persistence.Gateway) *ServiceManager {
	catalogService := NewCatalogService(logger, cfg, st, gateway)
	flashSaleService := NewFlashSaleService(logger, cfg, st, gateway)
	cartService := NewCartService(logger, st)
	viewService := NewViewService(st)
	bookingService := NewBookingService(logger, cfg, st)
	healthService := NewHealthService(logger, gateway)

	return &ServiceManager{
		CatalogService:   catalogService,
		FlashSaleService: flashSaleService,
		CartService:      cartService,
		ViewService:      viewService,
		BookingService:   bookingService,
		HealthService:    healthService,
	}
}

// Close releases resources held by long-lived services.
func (sm *ServiceManager) Close() {
	sm.BookingService.Close()
}

// persistSnapshot writes the post-mutation snapshot to the gateway. Persistence is
// best-effort: on failure the service logs a warning and keeps serving the in-memory
// state (session-only degradation), it never fails the user action.
func persistSnapshot(ctx context.Context, logger *gecho.Logger, gateway persistence.Gateway, snap *state.Snapshot) {
	payload, err := state.EncodeSnapshot(snap)
	if err != nil {
		logger.Error("Failed to encode state snapshot", gecho.Field("error", err))
		return
	}

	if err := gateway.Save(ctx, payload); err != nil {
		logger.Warn("Failed to persist state snapshot, continuing with in-memory state",
			gecho.Field("error", err))
	}
}
