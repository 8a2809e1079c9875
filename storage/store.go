package storage

import (
	"context"

	"sketchtostitch-me/models"
)

// OrderStore defines the contract for order persistence: an append-only
// order list plus a single "current order" snapshot pointer. This stands in
// for a real backend; a server-side implementation could replace it without
// touching the checkout flow.
type OrderStore interface {
	// SaveOrder appends a new order to the list and sets it as current
	SaveOrder(ctx context.Context, order *models.Order) error
	// ListOrders returns every stored order in append order
	ListOrders(ctx context.Context) ([]models.Order, error)
	// CurrentOrder returns the current-order snapshot, or nil when none exists
	CurrentOrder(ctx context.Context) (*models.Order, error)
	// MarkPaid flips the matching order's status from pending to paid and
	// records the payment date. No other field is ever mutated after payment.
	MarkPaid(ctx context.Context, orderID string, paymentDate string) (*models.Order, error)
}
