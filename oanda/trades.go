package oanda

import (
	"context"
	"fmt"
	"net/http"
)

// Trade endpoints.

// ListTrades returns the trades for the account, filtered by params
// (ids, state, instrument, count, beforeID).
// GET /v3/accounts/{accountID}/trades
func (c *Client) ListTrades(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/trades", accountID), params)
}

// ListOpenTrades returns all currently open trades for the account.
// GET /v3/accounts/{accountID}/openTrades
func (c *Client) ListOpenTrades(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/openTrades", accountID), params)
}

// GetTrade returns the details of a single trade. The specifier is either a
// trade id or a client id prefixed with "@".
// GET /v3/accounts/{accountID}/trades/{specifier}
func (c *Client) GetTrade(ctx context.Context, accountID, specifier string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/trades/%s", accountID, specifier), params)
}

// CloseTrade closes (fully or partially) an open trade. data carries the
// close request, e.g. {"units": "ALL"} or {"units": "100"}.
// PATCH /v3/accounts/{accountID}/trades/{specifier}/close
func (c *Client) CloseTrade(ctx context.Context, accountID, specifier string, data any) (*http.Response, error) {
	return c.patch(ctx, fmt.Sprintf("/v3/accounts/%s/trades/%s/close", accountID, specifier), data)
}

// UpdateTradeOrders creates, replaces or cancels the dependent orders
// (take profit, stop loss, trailing stop) of an open trade.
// PATCH /v3/accounts/{accountID}/trades/{specifier}/orders
func (c *Client) UpdateTradeOrders(ctx context.Context, accountID, specifier string, data any) (*http.Response, error) {
	return c.patch(ctx, fmt.Sprintf("/v3/accounts/%s/trades/%s/orders", accountID, specifier), data)
}

// UpdateTradeClientExtensions sets the client extensions of an open trade.
// PATCH /v3/accounts/{accountID}/trades/{specifier}/clientExtensions
func (c *Client) UpdateTradeClientExtensions(ctx context.Context, accountID, specifier string, data any) (*http.Response, error) {
	return c.patch(ctx, fmt.Sprintf("/v3/accounts/%s/trades/%s/clientExtensions", accountID, specifier), data)
}
