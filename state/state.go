package state

import (
	"sync"

	"maizonmarie_server/structs"
)

// Data is the mutable triple handed to a Mutate callback. Service mutators are the
// only write path into it.
type Data struct {
	Products   []structs.Product
	Settings   structs.SiteSettings
	FlashSales []structs.FlashSale
}

// State owns the storefront stores behind one lock. HTTP handlers run concurrently,
// so every user action serializes through Mutate; reads take copies so callers never
// hold references into guarded memory.
type State struct {
	mu   sync.RWMutex
	data Data
}

// NewState returns a state populated with the built-in seed data.
func NewState() *State {
	return &State{
		data: Data{
			Products:   SeedProducts(),
			Settings:   SeedSettings(),
			FlashSales: SeedFlashSales(),
		},
	}
}

// Restore replaces the whole state with a loaded snapshot.
func (s *State) Restore(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = Data{
		Products:   cloneProducts(snap.Products),
		Settings:   cloneSettings(snap.Settings),
		FlashSales: cloneFlashSales(snap.FlashSales),
	}
}

// Mutate runs fn under the write lock and returns a snapshot of the resulting state
// for the caller to persist.
func (s *State) Mutate(fn func(d *Data)) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
	return &Snapshot{
		Products:   cloneProducts(s.data.Products),
		Settings:   cloneSettings(s.data.Settings),
		FlashSales: cloneFlashSales(s.data.FlashSales),
	}
}

// Products returns a copy of the catalog in insertion order.
func (s *State) Products() []structs.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.data.Products)
}

// FindProduct returns a copy of the product with the given id, or nil.
func (s *State) FindProduct(id string) *structs.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.data.Products {
		if s.data.Products[i].ID == id {
			p := cloneProduct(s.data.Products[i])
			return &p
		}
	}
	return nil
}

// Settings returns a copy of the site settings.
func (s *State) Settings() structs.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSettings(s.data.Settings)
}

// FlashSales returns a copy of the promotional entries in list order.
func (s *State) FlashSales() []structs.FlashSale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFlashSales(s.data.FlashSales)
}

// Snapshot returns a copy of the current persisted triple.
func (s *State) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Snapshot{
		Products:   cloneProducts(s.data.Products),
		Settings:   cloneSettings(s.data.Settings),
		FlashSales: cloneFlashSales(s.data.FlashSales),
	}
}

func cloneProduct(p structs.Product) structs.Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.PriceOptions = append([]structs.PriceOption(nil), p.PriceOptions...)
	return out
}

func cloneProducts(products []structs.Product) []structs.Product {
	out := make([]structs.Product, len(products))
	for i := range products {
		out[i] = cloneProduct(products[i])
	}
	return out
}

func cloneSettings(settings structs.SiteSettings) structs.SiteSettings {
	out := settings
	out.AvailableTimeSlots = append([]string(nil), settings.AvailableTimeSlots...)
	out.GalleryItems = append([]structs.GalleryItem(nil), settings.GalleryItems...)
	return out
}

func cloneFlashSales(sales []structs.FlashSale) []structs.FlashSale {
	return append([]structs.FlashSale(nil), sales...)
}
