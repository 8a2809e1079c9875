package models

// PaymentRequest represents the mock payment form submission.
// Card number and expiry are accepted in any spacing; formatting helpers
// normalize them before validation.
// Example: {"cardNumber": "4242 4242 4242 4242", "expiryDate": "12/27",
// "cvv": "123", "cardholderName": "Juan Pérez"}
type PaymentRequest struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
	SaveCard       bool   `json:"saveCard"`
}

// PaymentResponse represents the response after the simulated charge completes
// Example response: {"orderId": "1718000000000", "status": "paid", "paymentDate": "2026-08-31T10:30:00Z"}
type PaymentResponse struct {
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	PaymentDate string `json:"paymentDate"`
}

// ReceiptData holds the fields rendered into the plain-text receipt
type ReceiptData struct {
	OrderNumber   string
	Date          string
	Items         string
	Total         int64
	CustomerName  string
	CustomerEmail string
}
