package structs

// SectionKey names one of the four storefront visibility toggles.
type SectionKey string

const (
	SectionFlashSale       SectionKey = "showFlashSale"
	SectionSpecialProducts SectionKey = "showSpecialProducts"
	SectionGallery         SectionKey = "showGallery"
	SectionBooking         SectionKey = "showBooking"
)

// SiteSettings is the single process-wide storefront configuration instance.
type SiteSettings struct {
	ShowFlashSale       bool          `json:"showFlashSale"`
	ShowSpecialProducts bool          `json:"showSpecialProducts"`
	ShowGallery         bool          `json:"showGallery"`
	ShowBooking         bool          `json:"showBooking"`
	LogoURL             string        `json:"logoUrl"`
	AvailableTimeSlots  []string      `json:"availableTimeSlots"`
	GalleryItems        []GalleryItem `json:"galleryItems"`
}

// HasTimeSlot reports whether slot is one of the bookable session hours.
func (s *SiteSettings) HasTimeSlot(slot string) bool {
	for _, t := range s.AvailableTimeSlots {
		if t == slot {
			return true
		}
	}
	return false
}
