package structs

// MediaType of a gallery item
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// GalleryCategory enum
type GalleryCategory string

const (
	CategoryPerfume GalleryCategory = "perfume"
	CategoryMakeup  GalleryCategory = "makeup"
)

// PriceOption is one size tier of a product. Prices are stored as whole naira.
type PriceOption struct {
	ID    string `json:"id"`
	Size  string `json:"size"`
	Price uint64 `json:"price" validate:"gte=0"`
}

// ProductNotes describes the scent pyramid of a perfume oil.
type ProductNotes struct {
	Top   string `json:"top"`
	Heart string `json:"heart"`
	Base  string `json:"base"`
}

// Product is a catalog entry. Identity is ID, an opaque caller-generated string;
// PriceOptions is ordered and its first element is the default selection. An empty
// option list is legal but leaves the product unorderable.
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name" validate:"required"`
	Description  string        `json:"description"`
	ScentProfile string        `json:"scentProfile"`
	Longevity    string        `json:"longevity"`
	Images       []string      `json:"images"`
	IsSpecial    bool          `json:"isSpecial"`
	PriceOptions []PriceOption `json:"priceOptions" validate:"dive"`
	Notes        ProductNotes  `json:"notes"`
}

// DefaultOption returns the first price option, or nil when the product has none.
func (p *Product) DefaultOption() *PriceOption {
	if len(p.PriceOptions) == 0 {
		return nil
	}
	return &p.PriceOptions[0]
}

// FindOption looks up a price option by id within this product.
func (p *Product) FindOption(optionID string) *PriceOption {
	for i := range p.PriceOptions {
		if p.PriceOptions[i].ID == optionID {
			return &p.PriceOptions[i]
		}
	}
	return nil
}

// FindOptionBySize looks up a price option by its size label.
func (p *Product) FindOptionBySize(size string) *PriceOption {
	for i := range p.PriceOptions {
		if p.PriceOptions[i].Size == size {
			return &p.PriceOptions[i]
		}
	}
	return nil
}

// PrimaryImage returns the first image URL, empty when the product has no images.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// GalleryItem is a flat media entry tagged with a two-valued category.
type GalleryItem struct {
	ID       string          `json:"id"`
	URL      string          `json:"url"`
	Type     MediaType       `json:"type" validate:"omitempty,oneof=image video"`
	Category GalleryCategory `json:"category" validate:"omitempty,oneof=perfume makeup"`
}
