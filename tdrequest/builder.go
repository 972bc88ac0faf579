package tdrequest

import (
	"fmt"
	"strings"
)

// BaseURL is the Twelve Data REST host.
const BaseURL = "https://api.twelvedata.com/"

// RequestBuilder assembles Twelve Data request URLs for one API key. It has no
// other state and is safe for concurrent use.
type RequestBuilder struct {
	apiKey string
}

// NewRequestBuilder creates a builder that signs every URL with apiKey.
func NewRequestBuilder(apiKey string) RequestBuilder {
	return RequestBuilder{apiKey: apiKey}
}

// APIKey returns the key the builder was created with.
func (b RequestBuilder) APIKey() string {
	return b.apiKey
}

// Exchanges returns the bare path of the exchange listing endpoint, without
// host or key. Use ExchangesURL for a request-ready URL.
func (b RequestBuilder) Exchanges() string {
	return "/exchanges"
}

// ExchangesURL returns the full exchange listing URL. It carries no type
// filter since ExchangeType has no API token.
func (b RequestBuilder) ExchangesURL() string {
	return BaseURL + "exchanges?apikey=" + b.apiKey
}

// TimeSeries returns the time_series URL for symbol at interval followed by
// whatever params has set. symbol is written as given.
func (b RequestBuilder) TimeSeries(symbol string, interval Interval, params TimeSeriesParams) string {
	return fmt.Sprintf("%stime_series?symbol=%s&interval=%s&apikey=%s%s",
		BaseURL, symbol, interval, b.apiKey, params.Query())
}

const redacted = "***"

// Redact masks every apikey value in rawURL so it can be logged. The rest of
// the string is returned unchanged.
func Redact(rawURL string) string {
	q := strings.IndexByte(rawURL, '?')
	if q < 0 {
		return rawURL
	}

	segments := strings.Split(rawURL[q+1:], "&")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "apikey=") {
			segments[i] = "apikey=" + redacted
		}
	}
	return rawURL[:q+1] + strings.Join(segments, "&")
}
