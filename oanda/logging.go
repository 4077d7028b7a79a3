package oanda

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every round trip at debug level. Enabled via
// WithDebugLogging or the OANDA_DEBUG environment variable.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("oanda request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("oanda request failed")
		return nil, err
	}

	// Never dump unbounded bodies: streaming responses have no length.
	withBody := resp.ContentLength >= 0
	if respDump, derr := httputil.DumpResponse(resp, withBody); derr == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("oanda response")
	}
	return resp, nil
}
