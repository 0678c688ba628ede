package services

import (
	"context"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"maizonmarie_server/lib"
	"maizonmarie_server/persistence"
	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

// FlashSaleService owns the promotional entries and the countdown derivations.
type FlashSaleService struct {
	logger  *gecho.Logger
	cfg     *structs.Config
	state   *state.State
	gateway persistence.Gateway
}

func NewFlashSaleService(logger *gecho.Logger, cfg *structs.Config, st *state.State, gateway persistence.Gateway) *FlashSaleService {
	return &FlashSaleService{
		logger:  logger,
		cfg:     cfg,
		state:   st,
		gateway: gateway,
	}
}

// IsEffectivelyActive reports whether a sale should surface on the storefront:
// operator flag on, not expired, global display toggle enabled, and the referenced
// product still in the catalog.
func IsEffectivelyActive(sale structs.FlashSale, settings structs.SiteSettings, products []structs.Product, now time.Time) bool {
	if !sale.Active || !settings.ShowFlashSale {
		return false
	}
	if !sale.EndTime.After(now) {
		return false
	}
	for i := range products {
		if products[i].ID == sale.ProductID {
			return true
		}
	}
	return false
}

// Remaining computes the countdown to the sale's end, clamped at zero once the end
// time has passed. Hours are total hours, not modulo 24.
func Remaining(sale structs.FlashSale, now time.Time) structs.Countdown {
	diff := sale.EndTime.Sub(now)
	if diff <= 0 {
		return structs.Countdown{}
	}
	return structs.Countdown{
		Hours:   int(diff.Hours()),
		Minutes: int(diff.Minutes()) % 60,
		Seconds: int(diff.Seconds()) % 60,
	}
}

// ActiveSale returns the first effectively active sale in list order together with
// its product, or nil when none qualifies. Overlapping active sales are not merged
// or ranked; first match wins.
func (fs *FlashSaleService) ActiveSale(now time.Time) (*structs.FlashSale, *structs.Product) {
	settings := fs.state.Settings()
	products := fs.state.Products()

	for _, sale := range fs.state.FlashSales() {
		if IsEffectivelyActive(sale, settings, products, now) {
			product := fs.state.FindProduct(sale.ProductID)
			s := sale
			return &s, product
		}
	}
	return nil, nil
}

// FindSale returns a copy of the sale with the given id, or nil.
func (fs *FlashSaleService) FindSale(id string) *structs.FlashSale {
	for _, sale := range fs.state.FlashSales() {
		if sale.ID == id {
			s := sale
			return &s
		}
	}
	return nil
}

// AddSale creates a sale defaulting to the first catalog product when no product is
// specified, active from the start, expiring after the configured default window.
// An empty catalog yields a sale with an empty product reference; it simply never
// becomes effectively active.
func (fs *FlashSaleService) AddSale(ctx context.Context, productID string) structs.FlashSale {
	sale := structs.FlashSale{
		ID:              uuid.NewString(),
		Active:          true,
		ProductID:       productID,
		OriginalPrice:   fs.cfg.Sale.DefaultOriginalPrice,
		DiscountedPrice: fs.cfg.Sale.DefaultDiscountedPrice,
		EndTime:         time.Now().Add(fs.cfg.Sale.DefaultDuration).UTC(),
	}

	snap := fs.state.Mutate(func(d *state.Data) {
		if sale.ProductID == "" && len(d.Products) > 0 {
			sale.ProductID = d.Products[0].ID
		}
		d.FlashSales = append(d.FlashSales, sale)
	})
	persistSnapshot(ctx, fs.logger, fs.gateway, snap)

	fs.logger.Info("Flash sale added",
		gecho.Field("id", sale.ID),
		gecho.Field("product_id", sale.ProductID),
	)
	return sale
}

// UpdateSale applies a field patch to the sale with the given id.
func (fs *FlashSaleService) UpdateSale(ctx context.Context, id string, patch structs.FlashSalePatch) (*structs.FlashSale, error) {
	var updated *structs.FlashSale

	snap := fs.state.Mutate(func(d *state.Data) {
		for i := range d.FlashSales {
			if d.FlashSales[i].ID != id {
				continue
			}
			sale := &d.FlashSales[i]
			if patch.Active != nil {
				sale.Active = *patch.Active
			}
			if patch.ProductID != nil {
				sale.ProductID = *patch.ProductID
			}
			if patch.OriginalPrice != nil {
				sale.OriginalPrice = *patch.OriginalPrice
			}
			if patch.DiscountedPrice != nil {
				sale.DiscountedPrice = *patch.DiscountedPrice
			}
			if patch.EndTime != nil {
				sale.EndTime = *patch.EndTime
			}
			s := *sale
			updated = &s
			return
		}
	})
	if updated == nil {
		return nil, lib.ErrNotFound
	}
	persistSnapshot(ctx, fs.logger, fs.gateway, snap)

	return updated, nil
}

// RemoveSale drops a sale by id, reporting whether anything was removed.
func (fs *FlashSaleService) RemoveSale(ctx context.Context, id string) bool {
	removed := false
	snap := fs.state.Mutate(func(d *state.Data) {
		for i := range d.FlashSales {
			if d.FlashSales[i].ID == id {
				d.FlashSales = append(d.FlashSales[:i], d.FlashSales[i+1:]...)
				removed = true
				return
			}
		}
	})
	if removed {
		persistSnapshot(ctx, fs.logger, fs.gateway, snap)
	}
	return removed
}

// CountdownTick is one second of a streamed countdown.
type CountdownTick struct {
	SaleID    string            `json:"saleId"`
	Remaining structs.Countdown `json:"remaining"`
}

// StreamCountdown emits one tick per second for the given sale until ctx is
// cancelled, the sale disappears, or it stops being displayable. The ticker is
// rebuilt, not patched, when the sale's end time changes under it; no tick is
// delivered after cancellation because the channel closes from the sending side.
func (fs *FlashSaleService) StreamCountdown(ctx context.Context, saleID string) <-chan CountdownTick {
	out := make(chan CountdownTick)

	go func() {
		defer close(out)

		sale := fs.FindSale(saleID)
		if sale == nil {
			return
		}
		endTime := sale.EndTime

		ticker := time.NewTicker(time.Second)
		defer func() { ticker.Stop() }()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				sale = fs.FindSale(saleID)
				if sale == nil {
					return
				}
				if !sale.EndTime.Equal(endTime) {
					// End time moved: rebuild the ticker against the new deadline.
					endTime = sale.EndTime
					ticker.Stop()
					ticker = time.NewTicker(time.Second)
				}

				tick := CountdownTick{SaleID: saleID, Remaining: Remaining(*sale, now)}
				select {
				case <-ctx.Done():
					return
				case out <- tick:
				}
			}
		}
	}()

	return out
}
