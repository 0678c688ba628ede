package products

import (
	"context"
	"net/http"
	"net/http/httptest"
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
	NewProductRoutesManager(gecho.NewDefaultLogger(), sm.CatalogService, sm.ViewService).RegisterRoutes(r)
	return r, sm
}

func TestFetchAllProducts(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Santal Mystique")
	assert.Contains(t, rec.Body.String(), "Oud Noir")
}

func TestFetchProductByID(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/products/2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oud Noir")
	assert.Contains(t, rec.Body.String(), `"orderable":true`)
}

func TestFetchProductByIDNotFound(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/products/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchSpecialProductsCarriesDisplayPrices(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/products/special", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	// Card prices come from each product's first size tier.
	assert.Contains(t, rec.Body.String(), "₦15,000")
	assert.Contains(t, rec.Body.String(), "₦25,000")
	assert.Contains(t, rec.Body.String(), `"visible":true`)
}

func TestFetchRegularProductsEmptyPartition(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/products/regular", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}
