package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maizonmarie_server/structs"
)

func TestSnapshotRoundTrip(t *testing.T) {
	st := NewState()
	snap := st.Snapshot()

	payload, err := EncodeSnapshot(snap)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(payload)
	require.NoError(t, err)

	assert.Equal(t, snap.Products, decoded.Products)
	assert.Equal(t, snap.Settings, decoded.Settings)
	require.Len(t, decoded.FlashSales, 1)
	assert.Equal(t, snap.FlashSales[0].ID, decoded.FlashSales[0].ID)
	assert.True(t, snap.FlashSales[0].EndTime.Equal(decoded.FlashSales[0].EndTime))
}

func TestDecodeSnapshotMergesDefaultFlashSales(t *testing.T) {
	// Payload written before flash sales existed: no flashSales field at all.
	payload := []byte(`{
		"products": [{"id": "p1", "name": "Legacy", "priceOptions": []}],
		"settings": {"showBooking": true, "availableTimeSlots": ["10:00 AM"]}
	}`)

	snap, err := DecodeSnapshot(payload)
	require.NoError(t, err)

	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Legacy", snap.Products[0].Name)
	assert.True(t, snap.Settings.ShowBooking)

	// Defaults merged in, restored fields kept as-is.
	require.Len(t, snap.FlashSales, 1)
	assert.Equal(t, "fs-1", snap.FlashSales[0].ID)
}

func TestDecodeSnapshotKeepsEmptyFlashSaleList(t *testing.T) {
	payload := []byte(`{"products": [], "settings": {}, "flashSales": []}`)

	snap, err := DecodeSnapshot(payload)
	require.NoError(t, err)
	assert.Empty(t, snap.FlashSales)
}

func TestDecodeSnapshotRejectsCorruptPayload(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not json"))
	assert.Error(t, err)
}

func TestMutateReturnsDetachedSnapshot(t *testing.T) {
	st := NewState()

	snap := st.Mutate(func(d *Data) {
		d.Products[0].Name = "Renamed"
	})
	require.Equal(t, "Renamed", snap.Products[0].Name)

	// Mutating the snapshot must not leak back into the state.
	snap.Products[0].Name = "Tampered"
	snap.Products[0].PriceOptions[0].Price = 1

	assert.Equal(t, "Renamed", st.Products()[0].Name)
	assert.Equal(t, uint64(15000), st.Products()[0].PriceOptions[0].Price)
}

func TestReadAccessorsReturnCopies(t *testing.T) {
	st := NewState()

	products := st.Products()
	products[0].PriceOptions[0].Price = 1
	products[0].Images[0] = "tampered"

	fresh := st.Products()
	assert.Equal(t, uint64(15000), fresh[0].PriceOptions[0].Price)
	assert.NotEqual(t, "tampered", fresh[0].Images[0])

	settings := st.Settings()
	settings.GalleryItems[0].ID = "tampered"
	settings.AvailableTimeSlots[0] = "tampered"

	assert.Equal(t, "g1", st.Settings().GalleryItems[0].ID)
	assert.Equal(t, "10:00 AM", st.Settings().AvailableTimeSlots[0])
}

func TestRestoreReplacesWholesale(t *testing.T) {
	st := NewState()

	st.Restore(&Snapshot{
		Products: []structs.Product{{ID: "only", Name: "Only"}},
		Settings: structs.SiteSettings{LogoURL: "logo"},
		FlashSales: []structs.FlashSale{
			{ID: "r1", Active: true, ProductID: "only", EndTime: time.Now().Add(time.Hour)},
		},
	})

	require.Len(t, st.Products(), 1)
	assert.Equal(t, "only", st.Products()[0].ID)
	assert.Equal(t, "logo", st.Settings().LogoURL)
	assert.False(t, st.Settings().ShowBooking)
	require.Len(t, st.FlashSales(), 1)
}
