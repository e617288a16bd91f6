package models

// CartLine is one (product, size) entry in the cart. Name, price and image
// are snapshotted from the product at insertion time; later fixture changes
// never touch an existing line.
type CartLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
}

// Matches reports whether the line is the unique entry for (productID, size).
func (l CartLine) Matches(productID int, size string) bool {
	return l.ProductID == productID && l.Size == size
}

// Subtotal is the snapshotted price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
