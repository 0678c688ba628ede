package site

import (
	"net/http"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/structs"
)

// FetchSettings handles GET /settings: the single site settings instance.
func (srm *SiteRoutesManager) FetchSettings(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"settings": srm.catalogService.Settings(),
		}),
		gecho.Send(),
	)
}

// FetchGallery handles GET /gallery. Without a category it returns every item in
// display order (most recent upload first); with ?category=perfume|makeup it returns
// that partition only.
func (srm *SiteRoutesManager) FetchGallery(w http.ResponseWriter, r *http.Request) {
	settings := srm.catalogService.Settings()

	category := r.URL.Query().Get("category")
	items := settings.GalleryItems

	switch structs.GalleryCategory(category) {
	case structs.CategoryPerfume, structs.CategoryMakeup:
		items = srm.viewService.GalleryByCategory(structs.GalleryCategory(category))
	case "":
		// all items
	default:
		gecho.BadRequest(w,
			gecho.WithMessage("error.gallery.unknownCategory"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items":   items,
			"count":   len(items),
			"visible": settings.ShowGallery,
		}),
		gecho.Send(),
	)
}
