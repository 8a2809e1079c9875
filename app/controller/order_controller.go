package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sketchtostitch-me/design"
	"sketchtostitch-me/models"
	"sketchtostitch-me/storage"
)

// OrderController handles HTTP requests for order creation and lookup
type OrderController struct {
	session *design.Session
	store   storage.OrderStore
}

// NewOrderController creates a new OrderController
func NewOrderController(session *design.Session, store storage.OrderStore) *OrderController {
	return &OrderController{
		session: session,
		store:   store,
	}
}

// validateOrderRequest checks the required shipping fields. An order with
// any missing field is rejected before anything is stored.
func validateOrderRequest(req *models.CreateOrderRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
		{"city", req.City},
		{"state", req.State},
		{"zipCode", req.ZipCode},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is required", field.name)
		}
	}
	return nil
}

// Orders handles POST and GET /orders
func (c *OrderController) Orders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createOrder(w, r)
	case http.MethodGet:
		c.listOrders(w, r)
	default:
		log.Printf("❌ Orders: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// createOrder snapshots the design session into a pending order and stores
// it as the current order.
func (c *OrderController) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateOrder: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateOrderRequest(&req); err != nil {
		log.Printf("❌ CreateOrder: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Size == "" {
		req.Size = "M"
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	snapshot := c.session.Snapshot()

	order := &models.Order{
		ID:           strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Size:         req.Size,
		Quantity:     req.Quantity,
		Stickers:     snapshot.Stickers,
		GarmentColor: snapshot.GarmentColor,
		TotalPrice:   snapshot.TotalPrice * int64(req.Quantity),
		Status:       models.OrderStatusPending,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := c.store.SaveOrder(context.Background(), order); err != nil {
		log.Printf("❌ CreateOrder: Error saving order: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save order: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("📦 CreateOrder: Order %s created, total=%d quantity=%d", order.ID, order.TotalPrice, order.Quantity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		log.Printf("❌ CreateOrder: Error encoding response: %v", err)
	}
}

// listOrders returns every stored order in append order
func (c *OrderController) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.store.ListOrders(context.Background())
	if err != nil {
		log.Printf("❌ ListOrders: Error loading orders: %v", err)
		http.Error(w, fmt.Sprintf("Failed to load orders: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.OrderListResponse{Orders: orders}); err != nil {
		log.Printf("❌ ListOrders: Error encoding response: %v", err)
	}
}

// CurrentOrder handles GET /orders/current
func (c *OrderController) CurrentOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ CurrentOrder: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	order, err := c.store.CurrentOrder(context.Background())
	if err != nil {
		log.Printf("❌ CurrentOrder: Error loading current order: %v", err)
		http.Error(w, fmt.Sprintf("Failed to load current order: %v", err), http.StatusInternalServerError)
		return
	}
	if order == nil {
		http.Error(w, "No current order", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		log.Printf("❌ CurrentOrder: Error encoding response: %v", err)
	}
}
