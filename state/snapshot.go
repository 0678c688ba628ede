package state

import (
	"encoding/json"

	"maizonmarie_server/structs"
)

// Snapshot is the persisted triple. Carts are deliberately absent: they are
// session-scoped and never written to the store.
type Snapshot struct {
	Products   []structs.Product    `json:"products"`
	Settings   structs.SiteSettings `json:"settings"`
	FlashSales []structs.FlashSale  `json:"flashSales"`
}

// EncodeSnapshot serializes a snapshot into the single-key store payload.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// DecodeSnapshot parses a store payload. Older payloads predate flash sales; when the
// flashSales field is absent the default flash-sale list is merged in while the
// restored products and settings are kept as-is.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var payload struct {
		Products   []structs.Product    `json:"products"`
		Settings   structs.SiteSettings `json:"settings"`
		FlashSales *[]structs.FlashSale `json:"flashSales"`
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Products: payload.Products,
		Settings: payload.Settings,
	}

	if payload.FlashSales != nil {
		snap.FlashSales = *payload.FlashSales
	} else {
		snap.FlashSales = SeedFlashSales()
	}

	return snap, nil
}
