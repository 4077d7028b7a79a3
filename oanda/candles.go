package oanda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Granularity represents the time frame for candles
type Granularity string

const (
	S5  Granularity = "S5"  // 5 seconds
	S10 Granularity = "S10" // 10 seconds
	S15 Granularity = "S15" // 15 seconds
	S30 Granularity = "S30" // 30 seconds
	M1  Granularity = "M1"  // 1 minute
	M2  Granularity = "M2"  // 2 minutes
	M4  Granularity = "M4"  // 4 minutes
	M5  Granularity = "M5"  // 5 minutes
	M10 Granularity = "M10" // 10 minutes
	M15 Granularity = "M15" // 15 minutes
	M30 Granularity = "M30" // 30 minutes
	H1  Granularity = "H1"  // 1 hour
	H2  Granularity = "H2"  // 2 hours
	H3  Granularity = "H3"  // 3 hours
	H4  Granularity = "H4"  // 4 hours
	H6  Granularity = "H6"  // 6 hours
	H8  Granularity = "H8"  // 8 hours
	H12 Granularity = "H12" // 12 hours
	D   Granularity = "D"   // 1 day
	W   Granularity = "W"   // 1 week
	M   Granularity = "M"   // 1 month
)

// PriceComponent represents the price component for candles
type PriceComponent string

const (
	MidPrice PriceComponent = "M"  // Midpoint candles
	BidPrice PriceComponent = "B"  // Bid candles
	AskPrice PriceComponent = "A"  // Ask candles
	BidAsk   PriceComponent = "BA" // Bid and Ask candles
)

// Candle is one parsed OHLC bar.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// CandlesRequest represents parameters for fetching historical candles
type CandlesRequest struct {
	Instrument  string         // Required: The instrument to fetch candles for (e.g., "EUR_USD")
	Price       PriceComponent // Price component (default: MidPrice)
	Granularity Granularity    // Candle granularity (default: S5)
	Count       int            // Number of candles (max 5000, mutually exclusive with From/To)
	From        *time.Time     // Start time (ISO 8601)
	To          *time.Time     // End time (ISO 8601)
	Smooth      bool           // Use previous candle's close as open
}

// candleData represents the OHLC data in the API response
type candleData struct {
	O string `json:"o"` // Open price
	H string `json:"h"` // High price
	L string `json:"l"` // Low price
	C string `json:"c"` // Close price
}

// apiCandle represents a single candle in the API response
type apiCandle struct {
	Complete bool       `json:"complete"`
	Volume   int        `json:"volume"`
	Time     string     `json:"time"`
	Mid      candleData `json:"mid,omitempty"`
	Bid      candleData `json:"bid,omitempty"`
	Ask      candleData `json:"ask,omitempty"`
}

// candlesResponse represents the API response for candles
type candlesResponse struct {
	Instrument  string      `json:"instrument"`
	Granularity string      `json:"granularity"`
	Candles     []apiCandle `json:"candles"`
}

// Candles fetches historical candles and parses them into Candle values.
// Incomplete candles are skipped. For the raw endpoint mapping use
// GetInstrumentCandles.
func (c *Client) Candles(ctx context.Context, req CandlesRequest) ([]Candle, error) {
	if req.Instrument == "" {
		return nil, fmt.Errorf("instrument is required")
	}

	params := map[string]string{}

	// Set price component (default to mid)
	if req.Price == "" {
		req.Price = MidPrice
	}
	params["price"] = string(req.Price)

	// Set granularity (default to S5)
	if req.Granularity == "" {
		req.Granularity = S5
	}
	params["granularity"] = string(req.Granularity)

	// Set count or time range
	if req.Count > 0 {
		if req.Count > 5000 {
			return nil, fmt.Errorf("count cannot exceed 5000")
		}
		params["count"] = strconv.Itoa(req.Count)
	} else {
		if req.From != nil {
			params["from"] = req.From.UTC().Format(time.RFC3339)
		}
		if req.To != nil {
			params["to"] = req.To.UTC().Format(time.RFC3339)
		}
	}

	if req.Smooth {
		params["smooth"] = "true"
	}

	endpoint := fmt.Sprintf("/v3/instruments/%s/candles", req.Instrument)
	httpReq, err := c.NewRequest(ctx, http.MethodGet, endpoint, params, nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(endpoint, resp)
	}

	var apiResp candlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	candles := make([]Candle, 0, len(apiResp.Candles))
	for _, ac := range apiResp.Candles {
		// Skip incomplete candles
		if !ac.Complete {
			continue
		}

		t, err := time.Parse(time.RFC3339, ac.Time)
		if err != nil {
			return nil, fmt.Errorf("parse time %s: %w", ac.Time, err)
		}

		// Use the appropriate price data based on request
		var priceData candleData
		switch req.Price {
		case BidPrice:
			priceData = ac.Bid
		case AskPrice:
			priceData = ac.Ask
		default: // MidPrice
			priceData = ac.Mid
		}

		open, err := strconv.ParseFloat(priceData.O, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open price: %w", err)
		}
		high, err := strconv.ParseFloat(priceData.H, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high price: %w", err)
		}
		low, err := strconv.ParseFloat(priceData.L, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low price: %w", err)
		}
		cl, err := strconv.ParseFloat(priceData.C, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close price: %w", err)
		}

		candles = append(candles, Candle{
			Open:   open,
			High:   high,
			Low:    low,
			Close:  cl,
			Time:   t,
			Volume: float64(ac.Volume),
		})
	}

	return candles, nil
}
