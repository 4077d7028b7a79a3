package oanda

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// PriceBucket is one depth level of a streamed price.
type PriceBucket struct {
	Price     string `json:"price"`
	Liquidity int64  `json:"liquidity"`
}

// StreamPrice is a PRICE message from the pricing stream.
type StreamPrice struct {
	Type        string        `json:"type"`
	Time        string        `json:"time"`
	Instrument  string        `json:"instrument"`
	Bids        []PriceBucket `json:"bids"`
	Asks        []PriceBucket `json:"asks"`
	CloseoutBid string        `json:"closeoutBid"`
	CloseoutAsk string        `json:"closeoutAsk"`
	Tradeable   bool          `json:"tradeable"`
}

// StreamPricing connects to the account pricing stream and invokes fn for
// every PRICE message. HEARTBEAT messages keep the connection alive and are
// filtered out. The stream runs until ctx is done, the server closes the
// connection, or fn returns an error.
func (c *Client) StreamPricing(ctx context.Context, accountID string, instruments []string, fn func(StreamPrice) error) error {
	if accountID == "" {
		return fmt.Errorf("oanda: missing account id")
	}
	if len(instruments) == 0 {
		return fmt.Errorf("oanda: missing instruments")
	}

	u, err := url.Parse(c.streamURL)
	if err != nil {
		return fmt.Errorf("oanda: bad stream url %q: %w", c.streamURL, err)
	}
	u.Path = fmt.Sprintf("/v3/accounts/%s/pricing/stream", accountID)
	q := u.Query()
	q.Set("instruments", strings.Join(instruments, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.stream.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(u.Path, resp)
	}

	sc := bufio.NewScanner(resp.Body)
	// OANDA stream messages can be long; bump max token
	sc.Buffer(make([]byte, 0, 64*1024), 2*1024*1024)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		var msg StreamPrice
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			return fmt.Errorf("oanda: bad stream json: %w (line=%q)", err, trimForErr(line))
		}

		if strings.ToUpper(msg.Type) != "PRICE" {
			continue
		}

		if err := fn(msg); err != nil {
			return err
		}
	}

	if err := sc.Err(); err != nil {
		// if ctx was cancelled, surface that instead
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return err
	}

	return nil
}

func trimForErr(s string) string {
	const n = 200
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
