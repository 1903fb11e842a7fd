package models

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// Payment method tags used by the checkout endpoint.
const (
	PaymentCOD    = "cod"
	PaymentPayTab = "paytab"
)

type Order struct {
	ID            uint        `json:"id"`
	UserID        uint        `json:"user_id"`
	Status        OrderStatus `json:"status"`
	TotalAmount   float64     `json:"total_amount"`
	PaymentMethod string      `json:"payment_method"`
	CreatedAt     string      `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `json:"id"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CardPayment is the only payment detail ever sent upstream for paytab
// orders: cardholder name and the last four digits. The full number and
// CVV exist only transiently for client-side validation.
type CardPayment struct {
	CardName string `json:"cardName"`
	LastFour string `json:"lastFour"`
}

// CheckoutRequest is the POST /orders/checkout payload.
type CheckoutRequest struct {
	Address       Address      `json:"address"`
	PaymentMethod string       `json:"paymentMethod"`
	Payment       *CardPayment `json:"payment,omitempty"`
}

type CheckoutResponse struct {
	OrderID uint `json:"order_id"`
}
