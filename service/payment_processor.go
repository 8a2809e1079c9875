package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"sketchtostitch-me/models"
)

// PaymentProcessor is the collaborator behind the mock checkout. A real
// gateway implementation can replace the simulated one without touching
// the payment flow.
type PaymentProcessor interface {
	// Charge processes a payment for the order and returns the payment date
	Charge(ctx context.Context, order *models.Order) (string, error)
}

// SimulatedProcessor stands in for a payment gateway with a fixed delay.
// Every charge succeeds; there is no network call and no failure mode
// beyond context cancellation.
type SimulatedProcessor struct {
	Delay time.Duration
}

// NewSimulatedProcessor creates a SimulatedProcessor with the standard
// two-second processing delay.
func NewSimulatedProcessor() *SimulatedProcessor {
	return &SimulatedProcessor{Delay: 2 * time.Second}
}

// Ensure SimulatedProcessor implements PaymentProcessor
var _ PaymentProcessor = (*SimulatedProcessor)(nil)

// Charge waits out the simulated gateway latency and reports success
func (p *SimulatedProcessor) Charge(ctx context.Context, order *models.Order) (string, error) {
	log.Printf("💳 Charge: Processing payment for order id=%s amount=%d", order.ID, order.TotalPrice)

	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("payment canceled: %w", ctx.Err())
	case <-timer.C:
	}

	paymentDate := time.Now().UTC().Format(time.RFC3339)
	log.Printf("✅ Charge: Payment completed for order id=%s", order.ID)
	return paymentDate, nil
}
