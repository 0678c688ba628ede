package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maizonmarie_server/lib"
	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

func TestIsEffectivelyActive(t *testing.T) {
	now := time.Now()
	settings := structs.SiteSettings{ShowFlashSale: true}
	products := []structs.Product{{ID: "p1", Name: "Santal"}}

	sale := structs.FlashSale{ID: "s1", Active: true, ProductID: "p1", EndTime: now.Add(time.Hour)}
	assert.True(t, IsEffectivelyActive(sale, settings, products, now))

	t.Run("operator flag off", func(t *testing.T) {
		s := sale
		s.Active = false
		assert.False(t, IsEffectivelyActive(s, settings, products, now))
	})

	t.Run("section hidden", func(t *testing.T) {
		hidden := settings
		hidden.ShowFlashSale = false
		assert.False(t, IsEffectivelyActive(sale, hidden, products, now))
	})

	t.Run("expired", func(t *testing.T) {
		s := sale
		s.EndTime = now.Add(-time.Second)
		assert.False(t, IsEffectivelyActive(s, settings, products, now))

		s.EndTime = now
		assert.False(t, IsEffectivelyActive(s, settings, products, now))
	})

	t.Run("dangling product", func(t *testing.T) {
		s := sale
		s.ProductID = "gone"
		assert.False(t, IsEffectivelyActive(s, settings, products, now))
	})
}

func TestRemainingUsesTotalHours(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	sale := structs.FlashSale{EndTime: now.Add(26*time.Hour + 30*time.Minute + 5*time.Second)}

	remaining := Remaining(sale, now)
	assert.Equal(t, 26, remaining.Hours)
	assert.Equal(t, 30, remaining.Minutes)
	assert.Equal(t, 5, remaining.Seconds)
	assert.False(t, remaining.Expired())
}

func TestRemainingOneMinuteWindow(t *testing.T) {
	now := time.Now()
	sale := structs.FlashSale{ID: "s1", Active: true, ProductID: "p1", EndTime: now.Add(60 * time.Second)}

	remaining := Remaining(sale, now)
	assert.Equal(t, 0, remaining.Hours)
	assert.Equal(t, 1, remaining.Minutes)
	assert.Equal(t, 0, remaining.Seconds)

	settings := structs.SiteSettings{ShowFlashSale: true}
	products := []structs.Product{{ID: "p1"}}
	assert.True(t, IsEffectivelyActive(sale, settings, products, now))

	// Past the end time the countdown saturates; the operator flag stays untouched.
	later := now.Add(2 * time.Minute)
	assert.Equal(t, structs.Countdown{}, Remaining(sale, later))
	assert.True(t, sale.Active)
	assert.False(t, IsEffectivelyActive(sale, settings, products, later))
}

func TestRemainingSaturatesAtZero(t *testing.T) {
	now := time.Now()
	sale := structs.FlashSale{EndTime: now.Add(-time.Minute)}

	remaining := Remaining(sale, now)
	assert.Equal(t, structs.Countdown{}, remaining)
	assert.True(t, remaining.Expired())
}

func TestActiveSaleFirstMatchWins(t *testing.T) {
	sm, st, _ := newTestManager()
	fs := sm.FlashSaleService

	second := fs.AddSale(context.Background(), "2")

	sale, product := fs.ActiveSale(time.Now())
	require.NotNil(t, sale)
	require.NotNil(t, product)
	assert.Equal(t, "fs-1", sale.ID)
	assert.Equal(t, "1", product.ID)

	// Deactivating the first sale promotes the second.
	st.Mutate(func(d *state.Data) { d.FlashSales[0].Active = false })

	sale, product = fs.ActiveSale(time.Now())
	require.NotNil(t, sale)
	assert.Equal(t, second.ID, sale.ID)
	assert.Equal(t, "2", product.ID)
}

func TestActiveSaleNoneQualifies(t *testing.T) {
	sm, _, _ := newTestManager()
	fs := sm.FlashSaleService

	_, err := sm.CatalogService.ToggleSection(context.Background(), structs.SectionFlashSale)
	require.NoError(t, err)

	sale, product := fs.ActiveSale(time.Now())
	assert.Nil(t, sale)
	assert.Nil(t, product)
}

func TestAddSaleDefaultsToFirstProduct(t *testing.T) {
	sm, _, _ := newTestManager()
	fs := sm.FlashSaleService

	sale := fs.AddSale(context.Background(), "")
	assert.Equal(t, "1", sale.ProductID)
	assert.True(t, sale.Active)
	assert.Equal(t, uint64(20000), sale.OriginalPrice)
	assert.Equal(t, uint64(15000), sale.DiscountedPrice)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), sale.EndTime, 5*time.Second)
}

func TestUpdateSaleAppliesOnlyPresentFields(t *testing.T) {
	sm, _, _ := newTestManager()
	fs := sm.FlashSaleService

	price := uint64(9999)
	updated, err := fs.UpdateSale(context.Background(), "fs-1", structs.FlashSalePatch{
		DiscountedPrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(9999), updated.DiscountedPrice)
	assert.Equal(t, uint64(15000), updated.OriginalPrice)
	assert.True(t, updated.Active)
	assert.Equal(t, "1", updated.ProductID)
}

func TestUpdateSaleUnknownID(t *testing.T) {
	sm, _, _ := newTestManager()
	fs := sm.FlashSaleService

	_, err := fs.UpdateSale(context.Background(), "missing", structs.FlashSalePatch{})
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestRemoveSale(t *testing.T) {
	sm, _, _ := newTestManager()
	fs := sm.FlashSaleService

	assert.True(t, fs.RemoveSale(context.Background(), "fs-1"))
	assert.False(t, fs.RemoveSale(context.Background(), "fs-1"))
	assert.Nil(t, fs.FindSale("fs-1"))
}

func TestStreamCountdownClosesWhenSaleRemoved(t *testing.T) {
	sm, _, _ := newTestManager()
	fs := sm.FlashSaleService

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ticks := fs.StreamCountdown(ctx, "fs-1")

	tick, ok := <-ticks
	require.True(t, ok)
	assert.Equal(t, "fs-1", tick.SaleID)
	assert.False(t, tick.Remaining.Expired())

	fs.RemoveSale(context.Background(), "fs-1")

	for range ticks {
	}
}

func TestStreamCountdownUnknownSaleClosesImmediately(t *testing.T) {
	sm, _, _ := newTestManager()
	fs := sm.FlashSaleService

	ticks := fs.StreamCountdown(context.Background(), "missing")

	_, ok := <-ticks
	assert.False(t, ok)
}

func TestStreamCountdownStopsOnCancel(t *testing.T) {
	sm, _, _ := newTestManager()
	fs := sm.FlashSaleService

	ctx, cancel := context.WithCancel(context.Background())
	ticks := fs.StreamCountdown(ctx, "fs-1")

	<-ticks
	cancel()

	for range ticks {
	}
}
