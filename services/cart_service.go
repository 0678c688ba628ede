package services

import (
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"maizonmarie_server/lib"
	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

// CartService owns the per-session carts. Cart state is volatile: it lives only in
// memory and is deliberately excluded from the persisted snapshot.
type CartService struct {
	logger *gecho.Logger
	state  *state.State

	mu    sync.RWMutex
	carts map[string][]structs.CartItem
}

func NewCartService(logger *gecho.Logger, st *state.State) *CartService {
	return &CartService{
		logger: logger,
		state:  st,
		carts:  make(map[string][]structs.CartItem),
	}
}

// CreateCart opens a fresh empty cart and returns its id.
func (cs *CartService) CreateCart() string {
	id := uuid.NewString()
	cs.mu.Lock()
	cs.carts[id] = []structs.CartItem{}
	cs.mu.Unlock()
	return id
}

// Items returns a copy of the cart's line items in insertion order.
func (cs *CartService) Items(cartID string) ([]structs.CartItem, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	items, ok := cs.carts[cartID]
	if !ok {
		return nil, lib.ErrCartNotFound
	}
	return append([]structs.CartItem(nil), items...), nil
}

// AddItem appends a denormalized snapshot of the product at the chosen size tier.
// The engine trusts the caller to pass a consistent product/option pair; it does not
// re-validate that the option belongs to the product.
func (cs *CartService) AddItem(cartID string, product structs.Product, option structs.PriceOption) (structs.CartItem, error) {
	item := structs.CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		Size:      option.Size,
		Price:     option.Price,
		Image:     product.PrimaryImage(),
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, ok := cs.carts[cartID]
	if !ok {
		return structs.CartItem{}, lib.ErrCartNotFound
	}
	cs.carts[cartID] = append(items, item)

	return item, nil
}

// AddFromFlashSale synthesizes a line item at the sale's discounted price. Sales
// carry no size dimension, so the product's first option labels the item (a
// documented single-size assumption).
func (cs *CartService) AddFromFlashSale(cartID string, sale structs.FlashSale, product structs.Product) (structs.CartItem, error) {
	size := "5ml"
	if opt := product.DefaultOption(); opt != nil {
		size = opt.Size
	}

	item := structs.CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name + " (Flash Sale)",
		Size:      size,
		Price:     sale.DiscountedPrice,
		Image:     product.PrimaryImage(),
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, ok := cs.carts[cartID]
	if !ok {
		return structs.CartItem{}, lib.ErrCartNotFound
	}
	cs.carts[cartID] = append(items, item)

	return item, nil
}

// RemoveItem removes a line item by id; an absent id is a no-op.
func (cs *CartService) RemoveItem(cartID, itemID string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, ok := cs.carts[cartID]
	if !ok {
		return lib.ErrCartNotFound
	}
	for i := range items {
		if items[i].ID == itemID {
			cs.carts[cartID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ChangeSize re-syncs a line item against the current catalog: it looks up the owning
// product, finds the option whose size label matches, and overwrites the item's size,
// price and name (the name follows the product's current name, which may have changed
// since add-time). When the product is gone or the size is no longer offered the item
// is left untouched, a deliberate silent no-op rather than an error. Returns whether
// the item changed.
func (cs *CartService) ChangeSize(cartID, itemID, newSize string) (bool, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, ok := cs.carts[cartID]
	if !ok {
		return false, lib.ErrCartNotFound
	}

	for i := range items {
		if items[i].ID != itemID {
			continue
		}

		product := cs.state.FindProduct(items[i].ProductID)
		if product == nil {
			return false, nil // stale reference, tolerated
		}
		option := product.FindOptionBySize(newSize)
		if option == nil {
			return false, nil // size not offered, tolerated
		}

		items[i].Name = product.Name
		items[i].Size = option.Size
		items[i].Price = option.Price
		return true, nil
	}

	return false, nil
}

// Subtotal sums the snapshot prices of a cart. No tax, shipping, or rounding.
func (cs *CartService) Subtotal(cartID string) (uint64, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	items, ok := cs.carts[cartID]
	if !ok {
		return 0, lib.ErrCartNotFound
	}
	var total uint64
	for i := range items {
		total += items[i].Price
	}
	return total, nil
}
