package oanda

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// PracticeURL is the REST endpoint for OANDA's practice/demo environment
	PracticeURL = "https://api-fxpractice.oanda.com"
	// LiveURL is the REST endpoint for OANDA's live trading environment
	LiveURL = "https://api-fxtrade.oanda.com"

	// PracticeStreamURL is the streaming endpoint for the practice environment
	PracticeStreamURL = "https://stream-fxpractice.oanda.com"
	// LiveStreamURL is the streaming endpoint for the live environment
	LiveStreamURL = "https://stream-fxtrade.oanda.com"
)

// Environment selects which OANDA deployment a client talks to.
type Environment string

const (
	Live     Environment = "live"
	Practice Environment = "practice"
)

// ParseEnvironment maps a config/CLI string to an Environment.
func ParseEnvironment(env string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "live":
		return Live, nil
	case "practice", "demo":
		return Practice, nil
	default:
		return "", fmt.Errorf("unknown OANDA env %q (want practice|live)", env)
	}
}

// BaseURL returns the REST base URL for the environment.
func (e Environment) BaseURL() string {
	if e == Live {
		return LiveURL
	}
	return PracticeURL
}

// StreamURL returns the streaming base URL for the environment.
func (e Environment) StreamURL() string {
	if e == Live {
		return LiveStreamURL
	}
	return PracticeStreamURL
}

// CallRecord describes one completed REST call, suitable for journaling.
type CallRecord struct {
	ID       string
	Time     time.Time
	Method   string
	URL      string
	Status   int // 0 when the transport failed before a response arrived
	Duration time.Duration
	Error    string
}

// CallRecorder receives a CallRecord for every request the client sends.
type CallRecorder interface {
	RecordCall(CallRecord) error
}

// Client is an OANDA v20 REST API client. Environment and token are fixed at
// construction, so a single Client is safe for concurrent use.
type Client struct {
	env       Environment
	token     string
	baseURL   string
	streamURL string

	// rest handles request/response calls; stream carries no timeout so
	// long-lived pricing streams are not cut off mid-read.
	rest    *http.Client
	stream  *http.Client
	journal CallRecorder
}

// NewClient creates a new OANDA API client for the given environment.
func NewClient(env Environment, token string, opts ...Option) *Client {
	c := &Client{
		env:       env,
		token:     token,
		baseURL:   env.BaseURL(),
		streamURL: env.StreamURL(),
		rest: &http.Client{
			Timeout: 30 * time.Second,
		},
		stream: &http.Client{},
	}

	// Auto-enable debug via env variable without changing code.
	if os.Getenv("OANDA_DEBUG") == "true" {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	return c
}

// Environment returns the environment the client was constructed with.
func (c *Client) Environment() Environment { return c.env }

// APIKey returns the bearer token the client authenticates with.
func (c *Client) APIKey() string { return c.token }

// BaseURL returns the resolved REST base URL.
func (c *Client) BaseURL() string { return c.baseURL }
