package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
	"storefront/transport"
)

type capture struct {
	method      string
	path        string
	contentType string
	body        []byte
}

func captureServer(t *testing.T, status int, response string) (*httptest.Server, *capture) {
	captured := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.contentType = r.Header.Get("Content-Type")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured.body = body

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestCreateOrderWireShape(t *testing.T) {
	srv, captured := captureServer(t, http.StatusCreated, `{}`)
	client := transport.NewClient(srv.URL)

	req := service.CreateOrderRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "123 Main St",
		PhoneNumber:     "(123) 456-7890",
		City:            "New York",
		State:           "NY",
		Zip:             "10001",
		OrderItems:      []service.CreateOrderItem{{ProductID: 1, Quantity: 2}},
	}
	require.NoError(t, client.CreateOrder(context.Background(), req))

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/orders", captured.path)
	assert.Equal(t, "application/json", captured.contentType)

	var sent service.CreateOrderRequest
	require.NoError(t, json.Unmarshal(captured.body, &sent))
	assert.Equal(t, req, sent)
}

func TestUpdateOrderStatusWireShape(t *testing.T) {
	srv, captured := captureServer(t, http.StatusOK, `{"status":"complete"}`)
	client := transport.NewClient(srv.URL)

	require.NoError(t, client.UpdateOrderStatus(context.Background(), "7", model.StatusComplete))

	assert.Equal(t, http.MethodPatch, captured.method)
	assert.Equal(t, "/orders/7/status", captured.path)
	assert.JSONEq(t, `{"status":"complete"}`, string(captured.body))
}

func TestUpdateOrderStatusRejected(t *testing.T) {
	srv, _ := captureServer(t, http.StatusInternalServerError, `{}`)
	client := transport.NewClient(srv.URL)

	err := client.UpdateOrderStatus(context.Background(), "7", model.StatusComplete)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestListOrders(t *testing.T) {
	srv, captured := captureServer(t, http.StatusOK,
		`[{"id":"7","customerName":"Jane Doe","totalAmount":25.8,"status":"pending","orderItems":[]}]`)
	client := transport.NewClient(srv.URL)

	orders, err := client.ListOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/orders", captured.path)
	require.Len(t, orders, 1)
	assert.Equal(t, "7", orders[0].ID)
	assert.Equal(t, model.StatusPending, orders[0].Status)
	assert.InDelta(t, 25.80, orders[0].TotalAmount, 1e-9)
}

func TestProduct(t *testing.T) {
	srv, captured := captureServer(t, http.StatusOK,
		`{"id":3,"name":"Botanical Set","price":24.9,"stockQuantity":12}`)
	client := transport.NewClient(srv.URL)

	product, err := client.Product(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "/products/3", captured.path)
	assert.Equal(t, 3, product.ID)
	assert.Equal(t, "Botanical Set", product.Name)
	assert.InDelta(t, 24.90, product.Price, 1e-9)
}

func TestProductNotFound(t *testing.T) {
	srv, _ := captureServer(t, http.StatusNotFound, `not found`)
	client := transport.NewClient(srv.URL)

	_, err := client.Product(context.Background(), 99)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
