package oanda

import (
	"context"
	"fmt"
	"net/http"
)

// Order endpoints.

// CreateOrder submits an order for the account. data is the v20 order
// request, e.g. {"order": {"type": "MARKET", "instrument": "EUR_USD", ...}}.
// POST /v3/accounts/{accountID}/orders
func (c *Client) CreateOrder(ctx context.Context, accountID string, data any) (*http.Response, error) {
	return c.post(ctx, fmt.Sprintf("/v3/accounts/%s/orders", accountID), data)
}

// ListOrders returns the orders for the account, filtered by params
// (ids, state, instrument, count, beforeID).
// GET /v3/accounts/{accountID}/orders
func (c *Client) ListOrders(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/orders", accountID), params)
}

// ListPendingOrders returns all pending orders for the account.
// GET /v3/accounts/{accountID}/pendingOrders
func (c *Client) ListPendingOrders(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/pendingOrders", accountID), params)
}

// GetOrder returns the details of a single order. The specifier is either an
// order id or a client id prefixed with "@".
// GET /v3/accounts/{accountID}/orders/{specifier}
func (c *Client) GetOrder(ctx context.Context, accountID, specifier string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/orders/%s", accountID, specifier), params)
}

// UpdateOrder replaces a pending order with a new one carried in data.
// PATCH /v3/accounts/{accountID}/orders/{specifier}
func (c *Client) UpdateOrder(ctx context.Context, accountID, specifier string, data any) (*http.Response, error) {
	return c.patch(ctx, fmt.Sprintf("/v3/accounts/%s/orders/%s", accountID, specifier), data)
}

// CancelPendingOrder cancels a pending order. data is usually nil; the v20
// endpoint takes no body, but the parameter is explicit so callers can pass
// client extensions where the API accepts them.
// PATCH /v3/accounts/{accountID}/orders/{specifier}/cancel
func (c *Client) CancelPendingOrder(ctx context.Context, accountID, specifier string, data any) (*http.Response, error) {
	return c.patch(ctx, fmt.Sprintf("/v3/accounts/%s/orders/%s/cancel", accountID, specifier), data)
}

// UpdateOrderClientExtensions sets the client extensions of a pending order.
// PATCH /v3/accounts/{accountID}/orders/{specifier}/clientExtensions
func (c *Client) UpdateOrderClientExtensions(ctx context.Context, accountID, specifier string, data any) (*http.Response, error) {
	return c.patch(ctx, fmt.Sprintf("/v3/accounts/%s/orders/%s/clientExtensions", accountID, specifier), data)
}
