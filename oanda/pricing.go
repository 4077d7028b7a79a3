package oanda

import (
	"context"
	"fmt"
)

// Pricing endpoints.

// GetPricing returns pricing information for a list of instruments
// (pass instruments as a comma-separated value in params).
// GET /v3/accounts/{accountID}/pricing
func (c *Client) GetPricing(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/pricing", accountID), params)
}

// GetAccountCandles returns candles for an instrument using the account's
// price smoothing and alignment settings.
// GET /v3/accounts/{accountID}/instruments/{instrument}/candles
func (c *Client) GetAccountCandles(ctx context.Context, accountID, instrument string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/instruments/%s/candles", accountID, instrument), params)
}
