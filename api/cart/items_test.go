package cart

import (
	"context"
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
	NewCartRoutesManager(gecho.NewDefaultLogger(), sm.CartService, sm.CatalogService, sm.FlashSaleService).RegisterRoutes(r)
	return r, sm
}

func postJSON(t *testing.T, r chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndFetchCart(t *testing.T) {
	r, sm := testRouter()

	rec := postJSON(t, r, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cartId")

	cartID := sm.CartService.CreateCart()
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/cart/"+cartID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subtotal":0`)
}

func TestFetchCartUnknownID(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/cart/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItemHappyPath(t *testing.T) {
	r, sm := testRouter()
	cartID := sm.CartService.CreateCart()

	rec := postJSON(t, r, "/cart/"+cartID+"/items", `{"productId":"1","optionId":"1-2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":true`)

	subtotal, err := sm.CartService.Subtotal(cartID)
	require.NoError(t, err)
	assert.Equal(t, uint64(27000), subtotal)
}

func TestAddItemMismatchedOptionIsTolerated(t *testing.T) {
	r, sm := testRouter()
	cartID := sm.CartService.CreateCart()

	// Option 2-1 belongs to product 2, not product 1.
	rec := postJSON(t, r, "/cart/"+cartID+"/items", `{"productId":"1","optionId":"2-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":false`)

	items, err := sm.CartService.Items(cartID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItemUnknownProduct(t *testing.T) {
	r, sm := testRouter()
	cartID := sm.CartService.CreateCart()

	rec := postJSON(t, r, "/cart/"+cartID+"/items", `{"productId":"missing","optionId":"1-1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddFlashSaleItem(t *testing.T) {
	r, sm := testRouter()
	cartID := sm.CartService.CreateCart()

	rec := postJSON(t, r, "/cart/"+cartID+"/items/flash-sale", `{"saleId":"fs-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":true`)
	assert.Contains(t, rec.Body.String(), "Flash Sale")

	subtotal, err := sm.CartService.Subtotal(cartID)
	require.NoError(t, err)
	assert.Equal(t, uint64(12000), subtotal)
}

func TestChangeItemSizeRepricesLine(t *testing.T) {
	r, sm := testRouter()
	cartID := sm.CartService.CreateCart()

	product := sm.CatalogService.FindProduct("1")
	item, err := sm.CartService.AddItem(cartID, *product, *product.FindOption("1-1"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/cart/"+cartID+"/items/"+item.ID+"/size", strings.NewReader(`{"size":"10ml"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"changed":true`)
	assert.Contains(t, rec.Body.String(), `"subtotal":27000`)
}

func TestRemoveItem(t *testing.T) {
	r, sm := testRouter()
	cartID := sm.CartService.CreateCart()

	product := sm.CatalogService.FindProduct("2")
	item, err := sm.CartService.AddItem(cartID, *product, *product.FindOption("2-2"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/cart/"+cartID+"/items/"+item.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	items, err := sm.CartService.Items(cartID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
