package services

import (
	"time"

	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

// ViewService derives the storefront's filtered sub-lists. Everything here is a pure
// recomputation over the current state; nothing is cached, insertion order is kept,
// and gallery uploads surface most-recent-first because new items are prepended.
type ViewService struct {
	state *state.State
}

func NewViewService(st *state.State) *ViewService {
	return &ViewService{state: st}
}

func (vs *ViewService) SpecialProducts() []structs.Product {
	return FilterProducts(vs.state.Products(), true)
}

func (vs *ViewService) RegularProducts() []structs.Product {
	return FilterProducts(vs.state.Products(), false)
}

func (vs *ViewService) GalleryByCategory(category structs.GalleryCategory) []structs.GalleryItem {
	return FilterGallery(vs.state.Settings().GalleryItems, category)
}

// FilterProducts partitions the catalog on the isSpecial flag. Together the two
// halves reconstruct the input list exactly.
func FilterProducts(products []structs.Product, special bool) []structs.Product {
	out := make([]structs.Product, 0, len(products))
	for _, p := range products {
		if p.IsSpecial == special {
			out = append(out, p)
		}
	}
	return out
}

// FilterGallery keeps the items tagged with the given category, preserving order.
func FilterGallery(items []structs.GalleryItem, category structs.GalleryCategory) []structs.GalleryItem {
	out := make([]structs.GalleryItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// FirstActiveSale returns the first effectively active sale in list order, or nil.
func FirstActiveSale(sales []structs.FlashSale, settings structs.SiteSettings, products []structs.Product, now time.Time) *structs.FlashSale {
	for i := range sales {
		if IsEffectivelyActive(sales[i], settings, products, now) {
			s := sales[i]
			return &s
		}
	}
	return nil
}
