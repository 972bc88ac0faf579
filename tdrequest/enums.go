package tdrequest

import (
	"errors"
	"fmt"
)

// ErrUnknownToken is returned when a string does not match any token of the
// requested enumeration.
var ErrUnknownToken = errors.New("unknown token")

// Interval is the sampling granularity of a time series.
type Interval uint8

const (
	Minutes1 Interval = iota
	Minutes5
	Minutes15
	Minutes30
	Minutes45
	Hours1
	Hours2
	Hours4
	Days1
	Weeks1
	Months1
)

// String returns the token Twelve Data expects in the interval parameter.
func (i Interval) String() string {
	switch i {
	case Minutes1:
		return "1min"
	case Minutes5:
		return "5min"
	case Minutes15:
		return "15min"
	case Minutes30:
		return "30min"
	case Minutes45:
		return "45min"
	case Hours1:
		return "1h"
	case Hours2:
		return "2h"
	case Hours4:
		return "4h"
	case Days1:
		return "1day"
	case Weeks1:
		return "1week"
	case Months1:
		return "1month"
	default:
		return ""
	}
}

// Intervals lists every interval in declaration order.
func Intervals() []Interval {
	return []Interval{
		Minutes1, Minutes5, Minutes15, Minutes30, Minutes45,
		Hours1, Hours2, Hours4,
		Days1, Weeks1, Months1,
	}
}

// ParseInterval maps a token such as "5min" back to its Interval.
func ParseInterval(s string) (Interval, error) {
	for _, i := range Intervals() {
		if i.String() == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("interval %q: %w", s, ErrUnknownToken)
}

// InstrumentType is the asset category used by the type filter.
type InstrumentType uint8

const (
	Stock InstrumentType = iota
	Index
	Etf
	Reit
)

// String returns the token Twelve Data expects in the type parameter.
func (t InstrumentType) String() string {
	switch t {
	case Stock:
		return "Stock"
	case Index:
		return "Index"
	case Etf:
		return "ETF"
	case Reit:
		return "REIT"
	default:
		return ""
	}
}

// InstrumentTypes lists every instrument type in declaration order.
func InstrumentTypes() []InstrumentType {
	return []InstrumentType{Stock, Index, Etf, Reit}
}

// ParseInstrumentType maps a token back to its InstrumentType. It is
// case-sensitive: "ETF" parses, "Etf" does not.
func ParseInstrumentType(s string) (InstrumentType, error) {
	for _, t := range InstrumentTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("instrument type %q: %w", s, ErrUnknownToken)
}

// ResponseDataFormat selects the body encoding of the response.
type ResponseDataFormat uint8

const (
	Csv ResponseDataFormat = iota
	Json
)

// String returns the token Twelve Data expects in the format parameter.
func (f ResponseDataFormat) String() string {
	switch f {
	case Csv:
		return "CSV"
	case Json:
		return "JSON"
	default:
		return ""
	}
}

// ResponseDataFormats lists every format in declaration order.
func ResponseDataFormats() []ResponseDataFormat {
	return []ResponseDataFormat{Csv, Json}
}

// ParseResponseDataFormat maps "CSV" or "JSON" back to its ResponseDataFormat.
func ParseResponseDataFormat(s string) (ResponseDataFormat, error) {
	for _, f := range ResponseDataFormats() {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("format %q: %w", s, ErrUnknownToken)
}

// ExchangeType filters the exchange listing. The API vocabulary for it is not
// pinned down yet, so it has no String method and cannot be put
// into a URL.
type ExchangeType uint8

const (
	ExchangeStock ExchangeType = iota
	ExchangeIndex
	ExchangeEtf
)

// Name is for logs only. It is not an API token.
func (t ExchangeType) Name() string {
	switch t {
	case ExchangeStock:
		return "ExchangeStock"
	case ExchangeIndex:
		return "ExchangeIndex"
	case ExchangeEtf:
		return "ExchangeEtf"
	default:
		return ""
	}
}
