package models

// Shipping is the single-row delivery fee resource behind GET/PUT /shipping.
type Shipping struct {
	DeliveryFee float64 `json:"delivery_fee"`
}
