package oanda

import (
	"context"
	"fmt"
)

// Instrument endpoints. See candles.go for the typed candle fetch.

// GetInstrumentCandles returns raw candle data for an instrument
// (params: price, granularity, count, from, to, smooth, ...).
// GET /v3/instruments/{instrument}/candles
func (c *Client) GetInstrumentCandles(ctx context.Context, instrument string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/instruments/%s/candles", instrument), params)
}

// GetOrderBook returns a snapshot of the instrument's order book.
// GET /v3/instruments/{instrument}/orderBook
func (c *Client) GetOrderBook(ctx context.Context, instrument string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/instruments/%s/orderBook", instrument), params)
}

// GetPositionBook returns a snapshot of the instrument's position book.
// GET /v3/instruments/{instrument}/positionBook
func (c *Client) GetPositionBook(ctx context.Context, instrument string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/instruments/%s/positionBook", instrument), params)
}
