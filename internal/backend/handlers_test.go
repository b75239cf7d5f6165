package backend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/domain/model"
)

func testRouter() http.Handler {
	return Router(NewStore([]model.Product{
		{ID: 1, Name: "Sunset Poster", Price: 10.00, Category: "poster", StockQuantity: 40},
		{ID: 2, Name: "City Map Print", Price: 18.00, Category: "print", StockQuantity: 25},
	}))
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const orderBody = `{
	"customerName": "Jane Doe",
	"customerEmail": "jane@example.com",
	"shippingAddress": "123 Main St",
	"phoneNumber": "(123) 456-7890",
	"city": "New York",
	"state": "NY",
	"zip": "10001",
	"orderItems": [{"productId": 1, "quantity": 2}]
}`

func TestGetProduct(t *testing.T) {
	router := testRouter()

	w := do(t, router, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var product model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "Sunset Poster", product.Name)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/products/99", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/products/abc", "").Code)
}

func TestCreateOrderAndList(t *testing.T) {
	router := testRouter()

	w := do(t, router, http.MethodPost, "/orders", orderBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var order model.AdminOrder
	require.NoError(t, json.NewDecoder(w.Body).Decode(&order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, "Jane Doe", order.CustomerName)
	assert.InDelta(t, 25.80, order.TotalAmount, 1e-9)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 1, order.OrderItems[0].ProductID)
	assert.InDelta(t, 10.00, order.OrderItems[0].PriceAtPurchase, 1e-9)

	w = do(t, router, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	var orders []model.AdminOrder
	require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCreateOrderValidation(t *testing.T) {
	router := testRouter()

	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, "/orders", `{"orderItems":[]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, "/orders",
		`{"orderItems":[{"productId":99,"quantity":1}]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, "/orders", `not json`).Code)
}

func TestUpdateStatus(t *testing.T) {
	router := testRouter()

	w := do(t, router, http.MethodPost, "/orders", orderBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var order model.AdminOrder
	require.NoError(t, json.NewDecoder(w.Body).Decode(&order))

	w = do(t, router, http.MethodPatch, "/orders/"+order.ID+"/status", `{"status":"complete"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/orders", "")
	var orders []model.AdminOrder
	require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	assert.Equal(t, model.StatusComplete, orders[0].Status)

	assert.Equal(t, http.StatusBadRequest,
		do(t, router, http.MethodPatch, "/orders/"+order.ID+"/status", `{"status":"shipped"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		do(t, router, http.MethodPatch, "/orders/unknown/status", `{"status":"complete"}`).Code)
}
