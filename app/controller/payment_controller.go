package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"sketchtostitch-me/models"
	"sketchtostitch-me/service"
	"sketchtostitch-me/storage"
	"sketchtostitch-me/utils"
)

// PaymentController handles the mock payment step of checkout
type PaymentController struct {
	store     storage.OrderStore
	processor service.PaymentProcessor
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(store storage.OrderStore, processor service.PaymentProcessor) *PaymentController {
	return &PaymentController{
		store:     store,
		processor: processor,
	}
}

// Pay handles POST /payment. The charge targets the current order; there is
// no order id in the request body.
func (c *PaymentController) Pay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Pay: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Pay: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Normalize the card fields before validation
	req.CardNumber = utils.FormatCardNumber(req.CardNumber)
	req.ExpiryDate = utils.FormatExpiryDate(req.ExpiryDate)

	if !utils.ValidCardNumber(req.CardNumber) {
		log.Printf("❌ Pay: Invalid card number")
		http.Error(w, "Invalid card number", http.StatusBadRequest)
		return
	}
	if !utils.ValidExpiryDate(req.ExpiryDate) {
		log.Printf("❌ Pay: Invalid expiry date")
		http.Error(w, "Invalid expiry date", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	order, err := c.store.CurrentOrder(ctx)
	if err != nil {
		log.Printf("❌ Pay: Error loading current order: %v", err)
		http.Error(w, fmt.Sprintf("Failed to load current order: %v", err), http.StatusInternalServerError)
		return
	}
	if order == nil {
		log.Printf("❌ Pay: No current order")
		http.Error(w, "No current order to pay for", http.StatusNotFound)
		return
	}
	if order.Status != models.OrderStatusPending {
		log.Printf("❌ Pay: Order %s is not pending (status=%s)", order.ID, order.Status)
		http.Error(w, "Order is not pending", http.StatusConflict)
		return
	}

	paymentDate, err := c.processor.Charge(r.Context(), order)
	if err != nil {
		log.Printf("❌ Pay: Charge failed for order %s: %v", order.ID, err)
		http.Error(w, fmt.Sprintf("Payment failed: %v", err), http.StatusBadGateway)
		return
	}

	paid, err := c.store.MarkPaid(ctx, order.ID, paymentDate)
	if err != nil {
		log.Printf("❌ Pay: Error marking order %s paid: %v", order.ID, err)
		http.Error(w, fmt.Sprintf("Failed to record payment: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("💰 Pay: Order %s paid at %s", paid.ID, paid.PaymentDate)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := models.PaymentResponse{
		OrderID:     paid.ID,
		Status:      paid.Status,
		PaymentDate: paid.PaymentDate,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Pay: Error encoding response: %v", err)
	}
}
