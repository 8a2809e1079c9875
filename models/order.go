package models

// Order status values. An order is created as pending and flips to paid
// exactly once, when the simulated payment completes.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order represents a point-in-time snapshot of the design session plus
// buyer-entered shipping and contact fields. It is never mutated after
// payment except for the pending -> paid status transition.
type Order struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	Size         string    `json:"size"`
	Quantity     int       `json:"quantity"`
	Stickers     []Sticker `json:"stickers"`
	GarmentColor string    `json:"garmentColor"`
	TotalPrice   int64     `json:"totalPrice"`
	Status       string    `json:"status"`
	CreatedAt    string    `json:"createdAt"`
	PaymentDate  string    `json:"paymentDate,omitempty"`
}

// CreateOrderRequest represents the order form submission
// Example: {"name": "Juan Pérez", "email": "juan@example.com", "phone": "+1234567890",
// "address": "Calle 1 #2-3", "city": "Bogotá", "state": "DC", "zipCode": "110111",
// "size": "M", "quantity": 1}
type CreateOrderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// OrderListResponse represents the response for listing stored orders
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}
