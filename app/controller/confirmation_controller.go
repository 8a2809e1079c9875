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
)

// ConfirmationController serves the post-payment confirmation: the paid
// order summary, the plain-text receipt and the printable proof PDF.
type ConfirmationController struct {
	store        storage.OrderStore
	proofService *service.ProofService
}

// NewConfirmationController creates a new ConfirmationController
func NewConfirmationController(store storage.OrderStore, proofService *service.ProofService) *ConfirmationController {
	return &ConfirmationController{
		store:        store,
		proofService: proofService,
	}
}

// currentPaidOrder loads the current order, requiring that it exists
func (c *ConfirmationController) currentOrder(w http.ResponseWriter, handler string) *models.Order {
	order, err := c.store.CurrentOrder(context.Background())
	if err != nil {
		log.Printf("❌ %s: Error loading current order: %v", handler, err)
		http.Error(w, fmt.Sprintf("Failed to load current order: %v", err), http.StatusInternalServerError)
		return nil
	}
	if order == nil {
		http.Error(w, "No current order", http.StatusNotFound)
		return nil
	}
	return order
}

// Confirmation handles GET /confirmation
func (c *ConfirmationController) Confirmation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ Confirmation: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	order := c.currentOrder(w, "Confirmation")
	if order == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		log.Printf("❌ Confirmation: Error encoding response: %v", err)
	}
}

// Receipt handles GET /confirmation/receipt, returning the plain-text
// receipt as a download.
func (c *ConfirmationController) Receipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ Receipt: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	order := c.currentOrder(w, "Receipt")
	if order == nil {
		return
	}

	receipt := service.BuildReceipt(order)
	filename := service.ReceiptFileName(order)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(receipt)); err != nil {
		log.Printf("❌ Receipt: Error writing receipt response: %v", err)
	}
}

// Proof handles GET /confirmation/proof, returning the rendered proof PDF
func (c *ConfirmationController) Proof(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ Proof: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	order := c.currentOrder(w, "Proof")
	if order == nil {
		return
	}

	pdfData, err := c.proofService.GeneratePDF(r.Context(), order)
	if err != nil {
		log.Printf("❌ Proof: Error generating PDF for order %s: %v", order.ID, err)
		http.Error(w, fmt.Sprintf("Failed to generate proof: %v", err), http.StatusInternalServerError)
		return
	}

	filename := service.ProofFileName(order)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfData); err != nil {
		log.Printf("❌ Proof: Error writing PDF response: %v", err)
	}
}
