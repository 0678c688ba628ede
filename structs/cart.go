package structs

// CartItem is a denormalized snapshot taken at add-time: name, size, price and image
// are copied from the catalog and do not track later edits. The only re-sync path is
// the cart engine's size change, which re-reads the owning product at that moment.
// ProductID may dangle after a product deletion; the snapshot fields stay intact.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Price     uint64 `json:"price"`
	Image     string `json:"image"`
}
