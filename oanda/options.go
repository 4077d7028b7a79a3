package oanda

// Functional options applied during NewClient. Kept in a standalone file so
// all available knobs are discoverable at a glance.

import (
	"fmt"
	"net/http"
)

// Option mutates the Client during NewClient().
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client for REST calls. Useful for
// setting transport timeouts, tracing, or custom TLS settings.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.rest = hc
		return nil
	}
}

// WithStreamHTTPClient injects a custom *http.Client for streaming calls.
// The default stream client carries no timeout.
func WithStreamHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.stream = hc
		return nil
	}
}

// WithBaseURL overrides the REST base URL chosen by the environment.
// Intended for tests and proxies.
func WithBaseURL(base string) Option {
	return func(c *Client) error {
		if base == "" {
			return fmt.Errorf("empty base url")
		}
		c.baseURL = base
		return nil
	}
}

// WithStreamURL overrides the streaming base URL chosen by the environment.
func WithStreamURL(base string) Option {
	return func(c *Client) error {
		if base == "" {
			return fmt.Errorf("empty stream url")
		}
		c.streamURL = base
		return nil
	}
}

// WithDebugLogging wraps both transports such that every request/response is
// dumped to the log when enabled is true.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		c.rest.Transport = &debugTransport{base: baseTransport(c.rest)}
		c.stream.Transport = &debugTransport{base: baseTransport(c.stream)}
		return nil
	}
}

// WithJournal records every REST call in the given recorder.
func WithJournal(rec CallRecorder) Option {
	return func(c *Client) error {
		if rec == nil {
			return fmt.Errorf("nil call recorder")
		}
		c.journal = rec
		return nil
	}
}

func baseTransport(hc *http.Client) http.RoundTripper {
	if hc.Transport != nil {
		return hc.Transport
	}
	return http.DefaultTransport
}
