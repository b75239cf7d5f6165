// Package backend is an in-memory stand-in for the storefront's REST
// backend, used by tests and local development runs.
package backend

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

type handler struct {
	store *Store
}

func Router(store *Store) http.Handler {
	h := &handler{store: store}

	r := mux.NewRouter()
	r.HandleFunc("/products/{id}", h.getProduct).Methods(http.MethodGet)
	r.HandleFunc("/orders", h.createOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders", h.listOrders).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}/status", h.updateStatus).Methods(http.MethodPatch)

	return logMiddleware(r)
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, ok := h.store.Product(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.OrderItems) == 0 {
		http.Error(w, "order has no items", http.StatusBadRequest)
		return
	}

	items := make([]model.CartItem, 0, len(req.OrderItems))
	orderItems := make([]model.AdminOrderItem, 0, len(req.OrderItems))
	for _, line := range req.OrderItems {
		product, ok := h.store.Product(line.ProductID)
		if !ok {
			http.Error(w, "unknown product in order", http.StatusBadRequest)
			return
		}
		items = append(items, model.CartItem{Product: product, Quantity: line.Quantity})
		orderItems = append(orderItems, model.AdminOrderItem{
			ID:              uuid.NewString(),
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: product.Price,
		})
	}

	order := model.AdminOrder{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		PhoneNumber:     req.PhoneNumber,
		TotalAmount:     service.PriceCart(items).Rounded().Total,
		OrderDate:       time.Now().UTC().Format(time.RFC3339),
		Status:          model.StatusPending,
		OrderItems:      orderItems,
	}
	h.store.AddOrder(order)

	log.WithFields(log.Fields{"order": order.ID, "total": order.TotalAmount}).Info("order created")
	writeJSON(w, http.StatusCreated, order)
}

func (h *handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Orders())
}

func (h *handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		Status model.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "invalid order status", http.StatusBadRequest)
		return
	}

	if !h.store.SetStatus(orderID, req.Status) {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	log.WithFields(log.Fields{"order": orderID, "status": req.Status}).Info("order status updated")
	writeJSON(w, http.StatusOK, map[string]model.OrderStatus{"status": req.Status})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("write response")
	}
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
