package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

// Client implements the product and order gateways over the backend's REST
// API. It does not retry; retry policy belongs to the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ service.OrderGateway   = &Client{}
	_ service.ProductGateway = &Client{}
)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Product(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateOrder(ctx context.Context, req service.CreateOrderRequest) error {
	return c.send(ctx, http.MethodPost, "/orders", req)
}

func (c *Client) ListOrders(ctx context.Context) ([]model.AdminOrder, error) {
	var orders []model.AdminOrder
	if err := c.get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	body := struct {
		Status model.OrderStatus `json:"status"`
	}{Status: status}
	return c.send(ctx, http.MethodPatch, "/orders/"+orderID+"/status", body)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode GET %s response", path)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.WithFields(log.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("backend rejected request")
		return errors.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return nil
}
