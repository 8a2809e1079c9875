package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"sketchtostitch-me/models"
)

// Storage keys, kept as file names. These mirror the browser-storage keys
// the web client used.
const (
	ordersKey       = "sketchtostitch_orders.json"
	currentOrderKey = "sketchtostitch_current_order.json"
)

// LocalStore persists orders as JSON files in a local directory: one
// append-only order list and one current-order snapshot.
type LocalStore struct {
	mu  sync.Mutex
	dir string
}

// NewLocalStore creates a LocalStore rooted at dir, creating the directory
// if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Ensure LocalStore implements OrderStore
var _ OrderStore = (*LocalStore)(nil)

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// readOrdersLocked loads the order list; a missing file is an empty list
func (s *LocalStore) readOrdersLocked() ([]models.Order, error) {
	data, err := os.ReadFile(s.path(ordersKey))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("failed to read order list: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to parse order list: %w", err)
	}
	return orders, nil
}

func (s *LocalStore) writeJSONLocked(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// SaveOrder appends the order to the list and sets the current pointer
func (s *LocalStore) SaveOrder(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.readOrdersLocked()
	if err != nil {
		return err
	}

	orders = append(orders, *order)
	if err := s.writeJSONLocked(ordersKey, orders); err != nil {
		return err
	}
	if err := s.writeJSONLocked(currentOrderKey, order); err != nil {
		return err
	}

	log.Printf("📦 SaveOrder: Stored order id=%s (total=%d, %d stickers)", order.ID, order.TotalPrice, len(order.Stickers))
	return nil
}

// ListOrders returns every stored order in append order
func (s *LocalStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readOrdersLocked()
}

// CurrentOrder returns the current-order snapshot, or nil when none exists
func (s *LocalStore) CurrentOrder(ctx context.Context) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(currentOrderKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read current order: %w", err)
	}

	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to parse current order: %w", err)
	}
	return &order, nil
}

// MarkPaid flips the matching order from pending to paid and sets the
// payment date, in both the order list and the current pointer.
func (s *LocalStore) MarkPaid(ctx context.Context, orderID string, paymentDate string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.readOrdersLocked()
	if err != nil {
		return nil, err
	}

	var paid *models.Order
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if orders[i].Status != models.OrderStatusPending {
			return nil, fmt.Errorf("order %s is not pending (status=%s)", orderID, orders[i].Status)
		}
		orders[i].Status = models.OrderStatusPaid
		orders[i].PaymentDate = paymentDate
		paid = &orders[i]
		break
	}

	if paid == nil {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	if err := s.writeJSONLocked(ordersKey, orders); err != nil {
		return nil, err
	}

	// Keep the current pointer in sync when it references the paid order
	current, err := s.currentOrderUnsafe()
	if err == nil && current != nil && current.ID == orderID {
		if err := s.writeJSONLocked(currentOrderKey, paid); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ MarkPaid: Order id=%s marked as paid at %s", orderID, paymentDate)
	return paid, nil
}

// currentOrderUnsafe reads the current pointer without taking the lock;
// callers must already hold it.
func (s *LocalStore) currentOrderUnsafe() (*models.Order, error) {
	data, err := os.ReadFile(s.path(currentOrderKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
