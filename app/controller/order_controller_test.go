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

	"sketchtostitch-me/design"
	"sketchtostitch-me/models"
	"sketchtostitch-me/storage"
)

func setupOrderController(t *testing.T) (*OrderController, *design.Session, storage.OrderStore) {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	session := design.NewSession(25)
	return NewOrderController(session, store), session, store
}

func orderRequestBody(t *testing.T, req models.CreateOrderRequest) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Name:     "Juan Pérez",
		Email:    "juan@example.com",
		Phone:    "+1234567890",
		Address:  "Calle 1 #2-3",
		City:     "Bogotá",
		State:    "DC",
		ZipCode:  "110111",
		Size:     "M",
		Quantity: 2,
	}
}

func TestOrderController_CreateOrder_SnapshotsSession(t *testing.T) {
	c, session, store := setupOrderController(t)

	_, err := session.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)
	require.NoError(t, session.SetColor("#dc2626"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", orderRequestBody(t, validOrderRequest()))
	c.Orders(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "#dc2626", order.GarmentColor)
	assert.Len(t, order.Stickers, 1)
	// (25 base + 5 sticker) x quantity 2
	assert.Equal(t, int64(60), order.TotalPrice)

	current, err := store.CurrentOrder(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, order.ID, current.ID)
}

func TestOrderController_CreateOrder_MissingFieldStoresNothing(t *testing.T) {
	c, _, store := setupOrderController(t)

	incomplete := validOrderRequest()
	incomplete.Address = ""

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", orderRequestBody(t, incomplete))
	c.Orders(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	orders, err := store.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderController_CreateOrder_DefaultsSizeAndQuantity(t *testing.T) {
	c, _, _ := setupOrderController(t)

	minimal := validOrderRequest()
	minimal.Size = ""
	minimal.Quantity = 0

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", orderRequestBody(t, minimal))
	c.Orders(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, "M", order.Size)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, int64(25), order.TotalPrice)
}

func TestOrderController_ListOrders(t *testing.T) {
	c, _, store := setupOrderController(t)

	require.NoError(t, store.SaveOrder(context.Background(), &models.Order{ID: "1001", Status: models.OrderStatusPending}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	c.Orders(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.OrderListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response.Orders, 1)
	assert.Equal(t, "1001", response.Orders[0].ID)
}

func TestOrderController_CurrentOrder_NoneIs404(t *testing.T) {
	c, _, _ := setupOrderController(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/current", nil)
	c.CurrentOrder(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
