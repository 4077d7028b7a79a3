package oanda

import (
	"context"
	"fmt"
	"net/http"
)

// Position endpoints.

// ListPositions returns all positions the account has ever had.
// GET /v3/accounts/{accountID}/positions
func (c *Client) ListPositions(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/positions", accountID), params)
}

// ListOpenPositions returns the positions with open trades.
// GET /v3/accounts/{accountID}/openPositions
func (c *Client) ListOpenPositions(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/openPositions", accountID), params)
}

// GetPosition returns the account's position for a single instrument.
// GET /v3/accounts/{accountID}/positions/{instrument}
func (c *Client) GetPosition(ctx context.Context, accountID, instrument string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/positions/%s", accountID, instrument), params)
}

// ClosePosition closes (fully or partially) the account's position for an
// instrument. data carries the close request, e.g. {"longUnits": "ALL"}.
// PATCH /v3/accounts/{accountID}/positions/{instrument}/close
func (c *Client) ClosePosition(ctx context.Context, accountID, instrument string, data any) (*http.Response, error) {
	return c.patch(ctx, fmt.Sprintf("/v3/accounts/%s/positions/%s/close", accountID, instrument), data)
}
