package services

import (
	"context"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"maizonmarie_server/lib"
	"maizonmarie_server/persistence"
	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

// CatalogService owns the product list and site settings. Its methods are the only
// write path into that part of the state; every committed mutation is followed by a
// snapshot write through the persistence gateway.
type CatalogService struct {
	logger  *gecho.Logger
	cfg     *structs.Config
	state   *state.State
	gateway persistence.Gateway
}

func NewCatalogService(logger *gecho.Logger, cfg *structs.Config, st *state.State, gateway persistence.Gateway) *CatalogService {
	return &CatalogService{
		logger:  logger,
		cfg:     cfg,
		state:   st,
		gateway: gateway,
	}
}

// Products returns the catalog in insertion order.
func (cs *CatalogService) Products() []structs.Product {
	return cs.state.Products()
}

// FindProduct returns the product with the given id, or nil.
func (cs *CatalogService) FindProduct(id string) *structs.Product {
	return cs.state.FindProduct(id)
}

// Settings returns the current site settings.
func (cs *CatalogService) Settings() structs.SiteSettings {
	return cs.state.Settings()
}

// CreateProduct assigns a fresh id when the draft has none and appends it to the
// catalog. Duplicate names are permitted.
func (cs *CatalogService) CreateProduct(ctx context.Context, draft structs.Product) structs.Product {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	for i := range draft.PriceOptions {
		if draft.PriceOptions[i].ID == "" {
			draft.PriceOptions[i].ID = uuid.NewString()
		}
	}

	snap := cs.state.Mutate(func(d *state.Data) {
		d.Products = append(d.Products, draft)
	})
	persistSnapshot(ctx, cs.logger, cs.gateway, snap)

	cs.logger.Info("Product created",
		gecho.Field("id", draft.ID),
		gecho.Field("name", draft.Name),
	)
	return draft
}

// UpsertProduct replaces the product with a matching id wholesale, or appends the
// draft as a new product when no match exists. The editing surface reuses this one
// code path for both create and edit. Returns true when the draft was inserted.
func (cs *CatalogService) UpsertProduct(ctx context.Context, draft structs.Product) (structs.Product, bool) {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	for i := range draft.PriceOptions {
		if draft.PriceOptions[i].ID == "" {
			draft.PriceOptions[i].ID = uuid.NewString()
		}
	}

	inserted := true
	snap := cs.state.Mutate(func(d *state.Data) {
		for i := range d.Products {
			if d.Products[i].ID == draft.ID {
				d.Products[i] = draft
				inserted = false
				return
			}
		}
		d.Products = append(d.Products, draft)
	})
	persistSnapshot(ctx, cs.logger, cs.gateway, snap)

	cs.logger.Info("Product upserted",
		gecho.Field("id", draft.ID),
		gecho.Field("inserted", inserted),
	)
	return draft, inserted
}

// DeleteProduct removes a product by id. The destructive action must be confirmed by
// the operator; without confirmation nothing is touched. There is no cascade: cart
// items and flash sales referencing the product keep their now-dangling reference.
func (cs *CatalogService) DeleteProduct(ctx context.Context, id string, confirmed bool) (bool, error) {
	if !confirmed {
		return false, lib.ErrNotConfirmed
	}

	deleted := false
	snap := cs.state.Mutate(func(d *state.Data) {
		for i := range d.Products {
			if d.Products[i].ID == id {
				d.Products = append(d.Products[:i], d.Products[i+1:]...)
				deleted = true
				return
			}
		}
	})
	if !deleted {
		return false, nil
	}
	persistSnapshot(ctx, cs.logger, cs.gateway, snap)

	cs.logger.Info("Product deleted", gecho.Field("id", id))
	return true, nil
}

// ToggleSection flips one of the four storefront visibility flags.
func (cs *CatalogService) ToggleSection(ctx context.Context, key structs.SectionKey) (structs.SiteSettings, error) {
	var settings structs.SiteSettings
	var unknown bool

	snap := cs.state.Mutate(func(d *state.Data) {
		switch key {
		case structs.SectionFlashSale:
			d.Settings.ShowFlashSale = !d.Settings.ShowFlashSale
		case structs.SectionSpecialProducts:
			d.Settings.ShowSpecialProducts = !d.Settings.ShowSpecialProducts
		case structs.SectionGallery:
			d.Settings.ShowGallery = !d.Settings.ShowGallery
		case structs.SectionBooking:
			d.Settings.ShowBooking = !d.Settings.ShowBooking
		default:
			unknown = true
		}
		settings = d.Settings
	})
	if unknown {
		return settings, lib.ErrNotFound
	}
	persistSnapshot(ctx, cs.logger, cs.gateway, snap)

	return settings, nil
}

// UpdateLogo replaces the storefront logo URL.
func (cs *CatalogService) UpdateLogo(ctx context.Context, url string) structs.SiteSettings {
	var settings structs.SiteSettings
	snap := cs.state.Mutate(func(d *state.Data) {
		d.Settings.LogoURL = url
		settings = d.Settings
	})
	persistSnapshot(ctx, cs.logger, cs.gateway, snap)
	return settings
}

// SetTimeSlots replaces the bookable session hours.
func (cs *CatalogService) SetTimeSlots(ctx context.Context, slots []string) structs.SiteSettings {
	var settings structs.SiteSettings
	snap := cs.state.Mutate(func(d *state.Data) {
		d.Settings.AvailableTimeSlots = append([]string(nil), slots...)
		settings = d.Settings
	})
	persistSnapshot(ctx, cs.logger, cs.gateway, snap)
	return settings
}

// AddGalleryItem encodes an uploaded file into an embeddable data URL, tags it by
// sniffed MIME type and prepends it, so the gallery renders most-recent-first.
func (cs *CatalogService) AddGalleryItem(ctx context.Context, file []byte, category structs.GalleryCategory) (structs.GalleryItem, error) {
	url, mediaType, err := lib.EncodeMediaDataURL(file)
	if err != nil {
		cs.logger.Warn("Rejected gallery upload", gecho.Field("error", err))
		return structs.GalleryItem{}, err
	}

	item := structs.GalleryItem{
		ID:       uuid.NewString(),
		URL:      url,
		Type:     mediaType,
		Category: category,
	}

	snap := cs.state.Mutate(func(d *state.Data) {
		d.Settings.GalleryItems = append([]structs.GalleryItem{item}, d.Settings.GalleryItems...)
	})
	persistSnapshot(ctx, cs.logger, cs.gateway, snap)

	cs.logger.Info("Gallery item added",
		gecho.Field("id", item.ID),
		gecho.Field("type", item.Type),
		gecho.Field("category", item.Category),
	)
	return item, nil
}

// RemoveGalleryItem removes a gallery entry by id, reporting whether anything was
// removed.
func (cs *CatalogService) RemoveGalleryItem(ctx context.Context, id string) bool {
	removed := false
	snap := cs.state.Mutate(func(d *state.Data) {
		items := d.Settings.GalleryItems
		for i := range items {
			if items[i].ID == id {
				d.Settings.GalleryItems = append(items[:i], items[i+1:]...)
				removed = true
				return
			}
		}
	})
	if removed {
		persistSnapshot(ctx, cs.logger, cs.gateway, snap)
	}
	return removed
}

// The draft transformations below operate on an in-progress edit only. They never
// touch the committed catalog; the edit lands when UpsertProduct is invoked.

// AddPriceOption appends a blank size tier to the draft.
func AddPriceOption(draft structs.Product) structs.Product {
	draft.PriceOptions = append(append([]structs.PriceOption(nil), draft.PriceOptions...), structs.PriceOption{
		ID:    uuid.NewString(),
		Size:  "New Size",
		Price: 0,
	})
	return draft
}

// RemovePriceOption drops the option with the given id from the draft. Removing the
// last option is permitted and leaves the product unorderable.
func RemovePriceOption(draft structs.Product, optionID string) structs.Product {
	options := make([]structs.PriceOption, 0, len(draft.PriceOptions))
	for _, o := range draft.PriceOptions {
		if o.ID != optionID {
			options = append(options, o)
		}
	}
	draft.PriceOptions = options
	return draft
}

// UpdatePriceOptionSize relabels one size tier of the draft.
func UpdatePriceOptionSize(draft structs.Product, optionID, size string) structs.Product {
	options := append([]structs.PriceOption(nil), draft.PriceOptions...)
	for i := range options {
		if options[i].ID == optionID {
			options[i].Size = size
		}
	}
	draft.PriceOptions = options
	return draft
}

// UpdatePriceOptionPrice reprices one size tier of the draft.
func UpdatePriceOptionPrice(draft structs.Product, optionID string, price uint64) structs.Product {
	options := append([]structs.PriceOption(nil), draft.PriceOptions...)
	for i := range options {
		if options[i].ID == optionID {
			options[i].Price = price
		}
	}
	draft.PriceOptions = options
	return draft
}

// AddProductImage prepends an image URL to the draft, newest first.
func AddProductImage(draft structs.Product, url string) structs.Product {
	draft.Images = append([]string{url}, draft.Images...)
	return draft
}

// RemoveProductImage drops the image at the given position; out-of-range positions
// are a no-op.
func RemoveProductImage(draft structs.Product, index int) structs.Product {
	if index < 0 || index >= len(draft.Images) {
		return draft
	}
	images := append([]string(nil), draft.Images...)
	draft.Images = append(images[:index], images[index+1:]...)
	return draft
}
