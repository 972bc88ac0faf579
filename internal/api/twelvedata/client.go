package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/Alias1177/tdurl/internal/platform/http"
	"github.com/Alias1177/tdurl/tdrequest"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Client is the TwelveData API client
type Client struct {
	requests   tdrequest.RequestBuilder
	httpClient *http.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new TwelveData client
type ClientOptions struct {
	APIKey          string
	RequestTimeout  time.Duration
	RequestsPerSec  int
	MaxRetries      int
	MaxRetryTimeout time.Duration
}

// APIError is the error envelope Twelve Data returns with HTTP 200.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Twelve Data API error %d: %s", e.Code, e.Message)
}

// NewClient creates a new TwelveData API client
func NewClient(options ClientOptions) *Client {
	httpOpts := http.ClientOptions{
		Timeout:         options.RequestTimeout,
		RequestsPerSec:  options.RequestsPerSec,
		MaxRetries:      options.MaxRetries,
		MaxRetryTimeout: options.MaxRetryTimeout,
	}

	return &Client{
		requests:   tdrequest.NewRequestBuilder(options.APIKey),
		httpClient: http.NewClient(httpOpts),
		logger:     log.With().Str("component", "twelvedata_client").Logger(),
	}
}

// TimeSeries fetches the raw time_series body in the format params asks for.
func (c *Client) TimeSeries(ctx context.Context, symbol string, interval tdrequest.Interval, params tdrequest.TimeSeriesParams) ([]byte, error) {
	return c.Fetch(ctx, c.requests.TimeSeries(symbol, interval, params))
}

// Exchanges fetches the raw exchange listing.
func (c *Client) Exchanges(ctx context.Context) ([]byte, error) {
	return c.Fetch(ctx, c.requests.ExchangesURL())
}

// Fetch GETs a URL produced by tdrequest and returns the body. Query values
// are escaped on the way out, since tdrequest emits free text verbatim. A JSON
// error envelope is turned into *APIError.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	logURL := tdrequest.Redact(rawURL)
	c.logger.Debug().Str("url", logURL).Msg("Fetching")

	resp, err := c.httpClient.Get(ctx, escapeQuery(rawURL))
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if strings.Contains(string(body), `"status":"error"`) {
		var apiErr APIError
		if err := json.Unmarshal(body, &apiErr); err != nil {
			c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing error envelope")
			return nil, fmt.Errorf("parsing error envelope: %w", err)
		}
		c.logger.Error().Int("code", apiErr.Code).Str("url", logURL).Msg(apiErr.Message)
		return nil, &apiErr
	}

	c.logger.Debug().Int("bytes", len(body)).Msg("Fetched")
	return body, nil
}

// escapeQuery percent-encodes each key and value after the '?' while keeping
// pair order. Values that are already escaped are decoded first so they are
// not escaped twice.
func escapeQuery(rawURL string) string {
	q := strings.IndexByte(rawURL, '?')
	if q < 0 {
		return rawURL
	}

	segments := strings.Split(rawURL[q+1:], "&")
	for i, seg := range segments {
		key, value, hasValue := strings.Cut(seg, "=")
		seg = queryEscape(key)
		if hasValue {
			seg += "=" + queryEscape(value)
		}
		segments[i] = seg
	}
	return rawURL[:q+1] + strings.Join(segments, "&")
}

func queryEscape(s string) string {
	if unescaped, err := url.QueryUnescape(s); err == nil {
		s = unescaped
	}
	return url.QueryEscape(s)
}
