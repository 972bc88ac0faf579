package tdrequest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ErrOutputSizeRange is reported by Validate for output sizes the server rejects.
var ErrOutputSizeRange = errors.New("output size out of range")

// Output size bounds accepted by the server.
const (
	MinOutputSize = 1
	MaxOutputSize = 5000
)

// TimeSeriesParams holds the optional query parameters of a time_series
// request. The zero value has nothing set. With* methods return a modified
// copy and never touch the receiver.
type TimeSeriesParams struct {
	exchange       *string
	country        *string
	instrumentType *InstrumentType
	outputSize     *uint16
	format         *ResponseDataFormat
}

// WithExchange sets the exchange the instrument is traded on.
func (p TimeSeriesParams) WithExchange(exchange string) TimeSeriesParams {
	p.exchange = &exchange
	return p
}

// WithCountry sets the country the instrument is traded in.
func (p TimeSeriesParams) WithCountry(country string) TimeSeriesParams {
	p.country = &country
	return p
}

// WithInstrumentType sets the asset category filter.
func (p TimeSeriesParams) WithInstrumentType(t InstrumentType) TimeSeriesParams {
	p.instrumentType = &t
	return p
}

// WithOutputSize sets the number of data points. The server accepts 1 to 5000
// and defaults to 30 when unset.
func (p TimeSeriesParams) WithOutputSize(n uint16) TimeSeriesParams {
	p.outputSize = &n
	return p
}

// WithFormat sets the response format. The server defaults to JSON.
func (p TimeSeriesParams) WithFormat(f ResponseDataFormat) TimeSeriesParams {
	p.format = &f
	return p
}

// Exchange returns the exchange and whether it is set.
func (p TimeSeriesParams) Exchange() (string, bool) {
	if p.exchange == nil {
		return "", false
	}
	return *p.exchange, true
}

// Country returns the country and whether it is set.
func (p TimeSeriesParams) Country() (string, bool) {
	if p.country == nil {
		return "", false
	}
	return *p.country, true
}

// InstrumentType returns the instrument type and whether it is set.
func (p TimeSeriesParams) InstrumentType() (InstrumentType, bool) {
	if p.instrumentType == nil {
		return 0, false
	}
	return *p.instrumentType, true
}

// OutputSize returns the output size and whether it is set.
func (p TimeSeriesParams) OutputSize() (uint16, bool) {
	if p.outputSize == nil {
		return 0, false
	}
	return *p.outputSize, true
}

// Format returns the response format and whether it is set.
func (p TimeSeriesParams) Format() (ResponseDataFormat, bool) {
	if p.format == nil {
		return 0, false
	}
	return *p.format, true
}

type queryPair struct {
	key   string
	value string
}

// pairs returns the set fields in wire order.
func (p TimeSeriesParams) pairs() []queryPair {
	pairs := make([]queryPair, 0, 5)
	if p.exchange != nil {
		pairs = append(pairs, queryPair{"exchange", *p.exchange})
	}
	if p.country != nil {
		pairs = append(pairs, queryPair{"country", *p.country})
	}
	if p.instrumentType != nil {
		pairs = append(pairs, queryPair{"type", p.instrumentType.String()})
	}
	if p.outputSize != nil {
		pairs = append(pairs, queryPair{"outputsize", strconv.FormatUint(uint64(*p.outputSize), 10)})
	}
	if p.format != nil {
		pairs = append(pairs, queryPair{"format", p.format.String()})
	}
	return pairs
}

// Query renders the set fields as "&key=value" segments meant to follow an
// existing query parameter. Values are not escaped. An empty set renders "".
func (p TimeSeriesParams) Query() string {
	var sb strings.Builder
	for _, kv := range p.pairs() {
		sb.WriteByte('&')
		sb.WriteString(kv.key)
		sb.WriteByte('=')
		sb.WriteString(kv.value)
	}
	return sb.String()
}

// String is the same as Query.
func (p TimeSeriesParams) String() string {
	return p.Query()
}

// Validate checks the output size against the server's range. Query and
// TimeSeries never call it.
func (p TimeSeriesParams) Validate() error {
	if p.outputSize == nil {
		return nil
	}
	if n := *p.outputSize; n < MinOutputSize || n > MaxOutputSize {
		return fmt.Errorf("outputsize %d not in [%d, %d]: %w", n, MinOutputSize, MaxOutputSize, ErrOutputSizeRange)
	}
	return nil
}

// MarshalZerologObject logs only the fields that are set.
func (p TimeSeriesParams) MarshalZerologObject(e *zerolog.Event) {
	for _, kv := range p.pairs() {
		e.Str(kv.key, kv.value)
	}
}

// ExchangesParams holds the optional filter of an exchanges request.
type ExchangesParams struct {
	exchangeType *ExchangeType
}

// WithExchangeType sets the listing filter.
func (p ExchangesParams) WithExchangeType(t ExchangeType) ExchangesParams {
	p.exchangeType = &t
	return p
}

// ExchangeType returns the filter and whether it is set.
func (p ExchangesParams) ExchangeType() (ExchangeType, bool) {
	if p.exchangeType == nil {
		return 0, false
	}
	return *p.exchangeType, true
}
