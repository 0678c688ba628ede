package state

import (
	"time"

	"maizonmarie_server/structs"
)

// Seed data is the built-in catalog used when no persisted snapshot exists or the
// stored payload fails to parse.

func SeedProducts() []structs.Product {
	return []structs.Product{
		{
			ID:           "1",
			Name:         "Santal Mystique",
			Description:  "A deep, meditative journey into the heart of ancient forests. This **Oil-based Version** elixir clings to the skin like a second velvet layer, unfolding layers of creaminess and spice over hours of wear.",
			ScentProfile: "Woody, Spicy, Creamy",
			Longevity:    "12+ Hours",
			Images: []string{
				"https://images.unsplash.com/photo-1594035910387-fea47794261f?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1547610291-7c42ef277df5?auto=format&fit=crop&q=80&w=1200",
			},
			IsSpecial: true,
			PriceOptions: []structs.PriceOption{
				{ID: "1-1", Size: "5ml", Price: 15000},
				{ID: "1-2", Size: "10ml", Price: 27000},
				{ID: "1-3", Size: "30ml", Price: 65000},
			},
			Notes: structs.ProductNotes{
				Top:   "Cardamom, Papyrus",
				Heart: "Sandalwood, Virginia Cedar",
				Base:  "Leather, Amber, Violet",
			},
		},
		{
			ID:           "2",
			Name:         "Oud Noir",
			Description:  "An enigmatic blend that captures the essence of midnight in a blooming garden. Intense, dark, and utterly sophisticated, this **Oil-based Version** is for those who leave a lingering impression.",
			ScentProfile: "Oud, Floral, Smoky",
			Longevity:    "10+ Hours",
			Images: []string{
				"https://images.unsplash.com/photo-1523293182086-7651a899d37f?auto=format&fit=crop&q=80&w=1200",
			},
			IsSpecial: true,
			PriceOptions: []structs.PriceOption{
				{ID: "2-1", Size: "5ml", Price: 25000},
				{ID: "2-2", Size: "10ml", Price: 45000},
			},
			Notes: structs.ProductNotes{
				Top:   "Saffron, Rose",
				Heart: "Agarwood (Oud), Praline",
				Base:  "Vanilla, Guaiac Wood",
			},
		},
	}
}

func SeedSettings() structs.SiteSettings {
	return structs.SiteSettings{
		ShowFlashSale:       true,
		ShowSpecialProducts: true,
		ShowGallery:         true,
		ShowBooking:         true,
		LogoURL:             "https://i.postimg.cc/mD8zndqQ/maizon-marie-logo.png",
		AvailableTimeSlots:  []string{"10:00 AM", "11:30 AM", "01:00 PM", "02:30 PM", "04:00 PM"},
		GalleryItems: []structs.GalleryItem{
			{ID: "g1", URL: "https://images.unsplash.com/photo-1541643600914-78b084683601?auto=format&fit=crop&q=80&w=800", Type: structs.MediaImage, Category: structs.CategoryPerfume},
			{ID: "g2", URL: "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?auto=format&fit=crop&q=80&w=800", Type: structs.MediaImage, Category: structs.CategoryMakeup},
			{ID: "g3", URL: "https://images.unsplash.com/photo-1563170351-be82bc888bb4?auto=format&fit=crop&q=80&w=800", Type: structs.MediaImage, Category: structs.CategoryPerfume},
			{ID: "g4", URL: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&q=80&w=800", Type: structs.MediaImage, Category: structs.CategoryMakeup},
		},
	}
}

// SeedFlashSales expires 24 hours after the moment it is built, matching the default
// sale window applied by the admin surface.
func SeedFlashSales() []structs.FlashSale {
	return []structs.FlashSale{
		{
			ID:              "fs-1",
			Active:          true,
			ProductID:       "1",
			OriginalPrice:   15000,
			DiscountedPrice: 12000,
			EndTime:         time.Now().Add(24 * time.Hour).UTC(),
		},
	}
}
