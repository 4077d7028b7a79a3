package oanda

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamPricing(t *testing.T) {
	lines := []string{
		`{"type":"HEARTBEAT","time":"2024-01-01T10:00:00.000000000Z"}`,
		`{"type":"PRICE","time":"2024-01-01T10:00:01.000000000Z","instrument":"EUR_USD","bids":[{"price":"1.0850","liquidity":1000000}],"asks":[{"price":"1.0852","liquidity":1000000}],"closeoutBid":"1.0849","closeoutAsk":"1.0853","tradeable":true}`,
		`{"type":"HEARTBEAT","time":"2024-01-01T10:00:05.000000000Z"}`,
		`{"type":"PRICE","time":"2024-01-01T10:00:06.000000000Z","instrument":"USD_JPY","bids":[{"price":"148.10","liquidity":500000}],"asks":[{"price":"148.12","liquidity":500000}],"tradeable":true}`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/accounts/001-001/pricing/stream", r.URL.Path)
		assert.Equal(t, "EUR_USD,USD_JPY", r.URL.Query().Get("instruments"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}))
	defer server.Close()

	client := NewClient(Practice, "test-token", WithStreamURL(server.URL))

	var prices []StreamPrice
	err := client.StreamPricing(context.Background(), "001-001", []string{"EUR_USD", "USD_JPY"},
		func(p StreamPrice) error {
			prices = append(prices, p)
			return nil
		})

	require.NoError(t, err)
	require.Len(t, prices, 2, "heartbeats should be filtered out")

	assert.Equal(t, "EUR_USD", prices[0].Instrument)
	require.Len(t, prices[0].Bids, 1)
	assert.Equal(t, "1.0850", prices[0].Bids[0].Price)
	assert.Equal(t, int64(1000000), prices[0].Bids[0].Liquidity)
	assert.Equal(t, "1.0849", prices[0].CloseoutBid)
	assert.True(t, prices[0].Tradeable)

	assert.Equal(t, "USD_JPY", prices[1].Instrument)
}

func TestStreamPricing_CallbackError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"type":"PRICE","instrument":"EUR_USD","tradeable":true}`)
		fmt.Fprintln(w, `{"type":"PRICE","instrument":"EUR_USD","tradeable":true}`)
	}))
	defer server.Close()

	client := NewClient(Practice, "test-token", WithStreamURL(server.URL))

	stop := errors.New("stop")
	calls := 0
	err := client.StreamPricing(context.Background(), "001-001", []string{"EUR_USD"},
		func(p StreamPrice) error {
			calls++
			return stop
		})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls, "stream should stop after the callback errors")
}

func TestStreamPricing_Errors(t *testing.T) {
	client := NewClient(Practice, "test-token")

	t.Run("missing account id", func(t *testing.T) {
		err := client.StreamPricing(context.Background(), "", []string{"EUR_USD"},
			func(StreamPrice) error { return nil })
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "account id")
	})

	t.Run("missing instruments", func(t *testing.T) {
		err := client.StreamPricing(context.Background(), "001-001", nil,
			func(StreamPrice) error { return nil })
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "instruments")
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errorMessage": "Insufficient authorization"}`))
		}))
		defer server.Close()

		c := NewClient(Practice, "bad-token", WithStreamURL(server.URL))
		err := c.StreamPricing(context.Background(), "001-001", []string{"EUR_USD"},
			func(StreamPrice) error { return nil })
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "http 401")
	})

	t.Run("malformed stream line", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, `{not json`)
		}))
		defer server.Close()

		c := NewClient(Practice, "test-token", WithStreamURL(server.URL))
		err := c.StreamPricing(context.Background(), "001-001", []string{"EUR_USD"},
			func(StreamPrice) error { return nil })
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bad stream json")
	})
}
