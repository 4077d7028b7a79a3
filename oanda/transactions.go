package oanda

import (
	"context"
	"fmt"
)

// Transaction endpoints.

// ListTransactions returns pages of the account's transaction history,
// filtered by params (from, to, pageSize, type).
// GET /v3/accounts/{accountID}/transactions
func (c *Client) ListTransactions(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/transactions", accountID), params)
}

// GetTransaction returns the details of a single transaction.
// GET /v3/accounts/{accountID}/transactions/{transactionID}
func (c *Client) GetTransaction(ctx context.Context, accountID, transactionID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/transactions/%s", accountID, transactionID), params)
}

// GetTransactionRange returns the transactions between two ids
// (pass from and to in params).
// GET /v3/accounts/{accountID}/transactions/idrange
func (c *Client) GetTransactionRange(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/transactions/idrange", accountID), params)
}

// GetTransactionsSince returns the transactions after a given id
// (pass id in params).
// GET /v3/accounts/{accountID}/transactions/sinceid
func (c *Client) GetTransactionsSince(ctx context.Context, accountID string, params map[string]string) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("/v3/accounts/%s/transactions/sinceid", accountID), params)
}
