package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchtostitch-me/models"
	"sketchtostitch-me/storage"
)

// mockProcessor is a hand-rolled PaymentProcessor with no delay
type mockProcessor struct {
	paymentDate string
	err         error
	charged     []string
}

func (m *mockProcessor) Charge(ctx context.Context, order *models.Order) (string, error) {
	m.charged = append(m.charged, order.ID)
	return m.paymentDate, m.err
}

func setupPaymentController(t *testing.T) (*PaymentController, storage.OrderStore, *mockProcessor) {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	processor := &mockProcessor{paymentDate: "2026-08-31T10:30:00Z"}
	return NewPaymentController(store, processor), store, processor
}

func paymentBody(t *testing.T, req models.PaymentRequest) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func validPayment() models.PaymentRequest {
	return models.PaymentRequest{
		CardNumber:     "4242424242424242",
		ExpiryDate:     "1227",
		CVV:            "123",
		CardholderName: "Juan Pérez",
	}
}

func TestPaymentController_Pay_MarksCurrentOrderPaid(t *testing.T) {
	c, store, processor := setupPaymentController(t)
	require.NoError(t, store.SaveOrder(context.Background(), &models.Order{
		ID:         "1001",
		Status:     models.OrderStatusPending,
		TotalPrice: 33,
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment", paymentBody(t, validPayment()))
	c.Pay(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1001"}, processor.charged)

	var response models.PaymentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "1001", response.OrderID)
	assert.Equal(t, models.OrderStatusPaid, response.Status)
	assert.Equal(t, "2026-08-31T10:30:00Z", response.PaymentDate)

	current, err := store.CurrentOrder(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, models.OrderStatusPaid, current.Status)
}

func TestPaymentController_Pay_NoCurrentOrder(t *testing.T) {
	c, _, processor := setupPaymentController(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment", paymentBody(t, validPayment()))
	c.Pay(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, processor.charged)
}

func TestPaymentController_Pay_InvalidCardRejectedBeforeCharge(t *testing.T) {
	c, store, processor := setupPaymentController(t)
	require.NoError(t, store.SaveOrder(context.Background(), &models.Order{
		ID:     "1001",
		Status: models.OrderStatusPending,
	}))

	short := validPayment()
	short.CardNumber = "4242"

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment", paymentBody(t, short))
	c.Pay(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, processor.charged)
}

func TestPaymentController_Pay_InvalidExpiryRejected(t *testing.T) {
	c, store, processor := setupPaymentController(t)
	require.NoError(t, store.SaveOrder(context.Background(), &models.Order{
		ID:     "1001",
		Status: models.OrderStatusPending,
	}))

	bad := validPayment()
	bad.ExpiryDate = "13/27"

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment", paymentBody(t, bad))
	c.Pay(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, processor.charged)
}

func TestPaymentController_Pay_AlreadyPaidConflicts(t *testing.T) {
	c, store, _ := setupPaymentController(t)
	require.NoError(t, store.SaveOrder(context.Background(), &models.Order{
		ID:     "1001",
		Status: models.OrderStatusPending,
	}))
	_, err := store.MarkPaid(context.Background(), "1001", "2026-08-31T09:00:00Z")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment", paymentBody(t, validPayment()))
	c.Pay(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPaymentController_Pay_SpacedCardAccepted(t *testing.T) {
	c, store, _ := setupPaymentController(t)
	require.NoError(t, store.SaveOrder(context.Background(), &models.Order{
		ID:     "1001",
		Status: models.OrderStatusPending,
	}))

	spaced := validPayment()
	spaced.CardNumber = "4242 4242 4242 4242"
	spaced.ExpiryDate = "12/27"

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment", paymentBody(t, spaced))
	c.Pay(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
