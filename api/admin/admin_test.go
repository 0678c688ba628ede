package admin

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maizonmarie_server/services"
	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

type nopGateway struct{}

func (nopGateway) Load(ctx context.Context) ([]byte, error)       { return nil, nil }
func (nopGateway) Save(ctx context.Context, payload []byte) error { return nil }
func (nopGateway) Ping(ctx context.Context) error                 { return nil }
func (nopGateway) Close() error                                   { return nil }

func testRouter() (chi.Router, *services.ServiceManager) {
	cfg := &structs.Config{
		Booking: &structs.BookingConfig{ConfirmationWindow: 4 * time.Second},
		Sale: &structs.SaleConfig{
			DefaultDuration:        24 * time.Hour,
			DefaultOriginalPrice:   20000,
			DefaultDiscountedPrice: 15000,
		},
	}
	sm := services.NewServiceManager(gecho.NewDefaultLogger(), cfg, state.NewState(), nopGateway{})

	r := chi.NewRouter()
	NewAdminRoutesManager(gecho.NewDefaultLogger(), sm.CatalogService, sm.FlashSaleService).RegisterRoutes(r)
	return r, sm
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateProductValidation(t *testing.T) {
	r, _ := testRouter()

	rec := doJSON(t, r, "POST", "/admin/products", `{"description":"nameless"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	r, sm := testRouter()

	rec := doJSON(t, r, "POST", "/admin/products", `{"name":"Rose Imperiale","priceOptions":[{"size":"5ml","price":18000}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, sm.CatalogService.Products(), 3)
}

func TestSaveProductUpserts(t *testing.T) {
	r, sm := testRouter()

	rec := doJSON(t, r, "PUT", "/admin/products", `{"id":"1","name":"Santal Mystique Reserve"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inserted":false`)
	assert.Equal(t, "Santal Mystique Reserve", sm.CatalogService.FindProduct("1").Name)

	rec = doJSON(t, r, "PUT", "/admin/products", `{"id":"7","name":"Ambre Sauvage"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inserted":true`)
	assert.Len(t, sm.CatalogService.Products(), 3)
}

func TestDeleteProductNeedsConfirmFlag(t *testing.T) {
	r, sm := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/admin/products/1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, sm.CatalogService.FindProduct("1"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/admin/products/1?confirm=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":true`)
	assert.Nil(t, sm.CatalogService.FindProduct("1"))
}

func TestToggleSection(t *testing.T) {
	r, sm := testRouter()

	rec := doJSON(t, r, "POST", "/admin/settings/sections/showGallery/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sm.CatalogService.Settings().ShowGallery)

	rec = doJSON(t, r, "POST", "/admin/settings/sections/showBogus/toggle", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateLogoAndTimeSlots(t *testing.T) {
	r, sm := testRouter()

	rec := doJSON(t, r, "PUT", "/admin/settings/logo", `{"url":"https://example.com/logo.png"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com/logo.png", sm.CatalogService.Settings().LogoURL)

	rec = doJSON(t, r, "PUT", "/admin/settings/time-slots", `{"timeSlots":["09:00 AM","05:00 PM"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"09:00 AM", "05:00 PM"}, sm.CatalogService.Settings().AvailableTimeSlots)
}

func TestDraftEndpointsDoNotTouchCatalog(t *testing.T) {
	r, sm := testRouter()

	rec := doJSON(t, r, "POST", "/admin/products/draft/options", `{"draft":{"id":"1","name":"Santal Mystique"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "New Size")

	// The committed product still has its original three tiers.
	assert.Len(t, sm.CatalogService.FindProduct("1").PriceOptions, 3)
}

func TestFlashSaleLifecycle(t *testing.T) {
	r, sm := testRouter()

	rec := doJSON(t, r, "POST", "/admin/flash-sales", `{"productId":"2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"productId":"2"`)

	rec = doJSON(t, r, "PATCH", "/admin/flash-sales/fs-1", `{"discountedPrice":9999}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(9999), sm.FlashSaleService.FindSale("fs-1").DiscountedPrice)

	rec = doJSON(t, r, "PATCH", "/admin/flash-sales/missing", `{"active":false}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/admin/flash-sales/fs-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, sm.FlashSaleService.FindSale("fs-1"))
}

var tinyGIF = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x00\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

func TestUploadGalleryItem(t *testing.T) {
	r, sm := testRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "upload.gif")
	require.NoError(t, err)
	_, err = part.Write(tinyGIF)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("category", "perfume"))
	require.NoError(t, mw.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	items := sm.CatalogService.Settings().GalleryItems
	require.Len(t, items, 5)
	assert.Contains(t, items[0].URL, "data:image/gif;base64,")
	assert.Equal(t, structs.CategoryPerfume, items[0].Category)
}

func TestUploadGalleryItemOversizedIsRejectedWholesale(t *testing.T) {
	r, sm := testRouter()

	// A valid image header followed by padding past the 16MB cap. The upload must
	// be refused outright, never truncated into a corrupt data URL.
	oversized := append(append([]byte(nil), tinyGIF...), make([]byte, maxGalleryUploadBytes)...)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "huge.gif")
	require.NoError(t, err)
	_, err = part.Write(oversized)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("category", "perfume"))
	require.NoError(t, mw.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, sm.CatalogService.Settings().GalleryItems, 4)
}

func TestUploadGalleryItemUnknownCategory(t *testing.T) {
	r, _ := testRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "upload.gif")
	require.NoError(t, err)
	_, err = part.Write(tinyGIF)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("category", "garden"))
	require.NoError(t, mw.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteGalleryItem(t *testing.T) {
	r, sm := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/admin/gallery/g2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"removed":true`)
	assert.Len(t, sm.CatalogService.Settings().GalleryItems, 3)
}
