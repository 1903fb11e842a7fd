package models

// CartEntry is what GET /cart returns per row: just the product reference
// and quantity. Product details are attached separately.
type CartEntry struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CartLine is an enriched entry: the upstream row plus a snapshot of the
// product fields needed for display and totals. Unavailable marks lines
// whose product detail fetch failed; they render as placeholders with a
// zero price and never contribute to the subtotal.
type CartLine struct {
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Unavailable bool    `json:"unavailable,omitempty"`
}
