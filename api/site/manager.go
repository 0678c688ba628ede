package site

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/services"
)

type SiteRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	viewService    *services.ViewService
	bookingService *services.BookingService
}

func NewSiteRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	viewService *services.ViewService,
	bookingService *services.BookingService,
) *SiteRoutesManager {
	return &SiteRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		viewService:    viewService,
		bookingService: bookingService,
	}
}

func (srm *SiteRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/settings", srm.FetchSettings)
	r.Get("/gallery", srm.FetchGallery)
	r.Get("/booking", srm.GetBookingStatus)
	r.Post("/booking", srm.SubmitBooking)
}
