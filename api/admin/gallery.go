package admin

import (
	"errors"
	"io"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/lib"
	"maizonmarie_server/structs"
)

const maxGalleryUploadBytes = 16 << 20

// UploadGalleryItem handles POST /admin/gallery as multipart form data: a "file"
// part plus a "category" field. The upload is sniffed, embedded as a data URL and
// prepended to the gallery.
func (arm *AdminRoutesManager) UploadGalleryItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxGalleryUploadBytes); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please upload a file and try again"),
			gecho.Send(),
		)
		return
	}

	category := structs.GalleryCategory(r.FormValue("category"))
	switch category {
	case structs.CategoryPerfume, structs.CategoryMakeup:
	default:
		gecho.BadRequest(w,
			gecho.WithMessage("error.gallery.unknownCategory"),
			gecho.Send(),
		)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please upload a file and try again"),
			gecho.Send(),
		)
		return
	}
	defer file.Close()

	// Read one byte past the cap so an oversized upload is rejected instead of
	// being truncated into a corrupt data URL.
	payload, err := io.ReadAll(io.LimitReader(file, maxGalleryUploadBytes+1))
	if err != nil {
		arm.logger.Error("Failed to read gallery upload", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to process the upload. Please try again"),
			gecho.Send(),
		)
		return
	}
	if len(payload) > maxGalleryUploadBytes {
		gecho.BadRequest(w,
			gecho.WithMessage("Uploads are limited to 16MB"),
			gecho.Send(),
		)
		return
	}

	item, err := arm.catalogService.AddGalleryItem(r.Context(), payload, category)
	if err != nil {
		if errors.Is(err, lib.ErrUnsupportedMedia) || errors.Is(err, lib.ErrEmptyUpload) {
			gecho.BadRequest(w,
				gecho.WithMessage("Only image and video uploads are supported"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to add gallery item", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to process the upload. Please try again"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Gallery item added"),
		gecho.WithData(map[string]any{"item": item}),
		gecho.Send(),
	)
}

// DeleteGalleryItem handles DELETE /admin/gallery/{id}; deleting an absent item
// succeeds as a no-op.
func (arm *AdminRoutesManager) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed := arm.catalogService.RemoveGalleryItem(r.Context(), id)

	gecho.Success(w,
		gecho.WithMessage("Gallery item removed"),
		gecho.WithData(map[string]any{"removed": removed}),
		gecho.Send(),
	)
}
