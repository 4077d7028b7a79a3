package oanda

import (
	"context"
	"fmt"
	"net/http"
)

// Account endpoints. Each method is a stateless mapping from a logical
// operation to a v20 path and verb; params are forwarded unchanged as query
// parameters and data is forwarded unchanged as the JSON body.

// ListAccounts returns the accounts authorized for the current token.
// GET /v3/accounts
func (c *Client) ListAccounts(ctx context.Context, params map[string]string) (map[string]any, error) {
	return c.get(ctx, "/v3/accounts", params)
}

// GetAccount returns the full details of a single account.
// GET /v3/accounts/{accountID}
func (c *Client) GetAccount(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s", accountID), params)
}

// GetAccountSummary returns a summary of the account, without the full
// order/trade/position lists.
// GET /v3/accounts/{accountID}/summary
func (c *Client) GetAccountSummary(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/summary", accountID), params)
}

// GetAccountInstruments returns the instruments tradeable by the account.
// GET /v3/accounts/{accountID}/instruments
func (c *Client) GetAccountInstruments(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/instruments", accountID), params)
}

// ConfigureAccount sets client-configurable account properties such as the
// alias or margin rate.
// PATCH /v3/accounts/{accountID}/configuration
func (c *Client) ConfigureAccount(ctx context.Context, accountID string, data any) (*http.Response, error) {
	return c.patch(ctx, fmt.Sprintf("/v3/accounts/%s/configuration", accountID), data)
}

// GetAccountChanges returns the state changes since a transaction id
// (pass sinceTransactionID in params).
// GET /v3/accounts/{accountID}/changes
func (c *Client) GetAccountChanges(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/changes", accountID), params)
}
