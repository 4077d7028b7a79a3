package oanda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/oandacl/pkg/id"
)

// resolveEndpoint joins a relative v20 endpoint with the client's base URL.
// Only the path component of endpoint is used; leading and trailing slashes
// are stripped before joining. A query string already present on the
// endpoint is preserved.
func (c *Client) resolveEndpoint(endpoint string) (*url.URL, error) {
	rel, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("oanda: bad endpoint %q: %w", endpoint, err)
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("oanda: bad base url %q: %w", c.baseURL, err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Trim(rel.Path, "/")
	u.RawQuery = rel.RawQuery
	return u, nil
}

// NewRequest assembles an authenticated *http.Request for a relative v20
// endpoint.
//
// GET requests fold params into the query string, merging with any query
// already present on the endpoint, and carry no body. POST and PATCH
// requests JSON-encode body when non-nil and ignore params.
//
// The mandatory Authorization and Content-Type headers are filled in only
// for keys the caller did not set in extra, so caller-supplied headers win.
func (c *Client) NewRequest(ctx context.Context, method, endpoint string, params map[string]string, body any, extra http.Header) (*http.Request, error) {
	u, err := c.resolveEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	var rd io.Reader
	if method == http.MethodGet {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	} else if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("oanda: encode request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, fmt.Errorf("oanda: create request: %w", err)
	}

	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do sends the request on the underlying HTTP client, counting the call in
// metrics and, when a journal is configured, recording it there.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.rest.Do(req)
	c.observe(req, resp, err, start)
	return resp, err
}

func (c *Client) observe(req *http.Request, resp *http.Response, err error, start time.Time) {
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(req.Method).Observe(elapsed.Seconds())

	if c.journal == nil {
		return
	}
	rec := CallRecord{
		ID:       id.New(),
		Time:     start.UTC(),
		Method:   req.Method,
		URL:      req.URL.String(),
		Status:   status,
		Duration: elapsed,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	if jerr := c.journal.RecordCall(rec); jerr != nil {
		log.Warn().Err(jerr).Str("url", rec.URL).Msg("oanda: journal record failed")
	}
}

// get performs a GET against endpoint and decodes the JSON response into a
// generic map. Non-200 statuses are returned as errors carrying a truncated
// copy of the response body.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) (map[string]any, error) {
	req, err := c.NewRequest(ctx, http.MethodGet, endpoint, params, nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(endpoint, resp)
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("oanda %s: decode response: %w", endpoint, err)
	}
	return out, nil
}

// apiError summarizes a non-200 response, keeping at most 64 KiB of body.
func apiError(endpoint string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	return fmt.Errorf("oanda %s http %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(b)))
}

// post performs a POST with data as the JSON body and returns the raw
// response. The caller inspects the status and closes the body.
func (c *Client) post(ctx context.Context, endpoint string, data any) (*http.Response, error) {
	req, err := c.NewRequest(ctx, http.MethodPost, endpoint, nil, data, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// patch performs a PATCH with data as the JSON body and returns the raw
// response. The caller inspects the status and closes the body.
func (c *Client) patch(ctx context.Context, endpoint string, data any) (*http.Response, error) {
	req, err := c.NewRequest(ctx, http.MethodPatch, endpoint, nil, data, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}
