package tdrequest

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSeriesParamsQuery(t *testing.T) {
	tests := []struct {
		name     string
		params   TimeSeriesParams
		expected string
	}{
		{
			name:     "empty",
			params:   TimeSeriesParams{},
			expected: "",
		},
		{
			name:     "output size only",
			params:   TimeSeriesParams{}.WithOutputSize(100),
			expected: "&outputsize=100",
		},
		{
			name:     "format only",
			params:   TimeSeriesParams{}.WithFormat(Csv),
			expected: "&format=CSV",
		},
		{
			name: "all fields set out of order",
			params: TimeSeriesParams{}.
				WithFormat(Json).
				WithOutputSize(5000).
				WithInstrumentType(Etf).
				WithCountry("United States").
				WithExchange("NASDAQ"),
			expected: "&exchange=NASDAQ&country=United States&type=ETF&outputsize=5000&format=JSON",
		},
		{
			name:     "empty string is set, not unset",
			params:   TimeSeriesParams{}.WithExchange(""),
			expected: "&exchange=",
		},
		{
			name:     "free text is not escaped",
			params:   TimeSeriesParams{}.WithCountry("a&b=c"),
			expected: "&country=a&b=c",
		},
		{
			name:     "later set overrides earlier",
			params:   TimeSeriesParams{}.WithOutputSize(10).WithOutputSize(20),
			expected: "&outputsize=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.Query())
			assert.Equal(t, tt.expected, tt.params.String())
		})
	}
}

func TestTimeSeriesParamsWithDoesNotMutateReceiver(t *testing.T) {
	base := TimeSeriesParams{}.WithExchange("NYSE")
	derived := base.WithCountry("US")

	assert.Equal(t, "&exchange=NYSE", base.Query())
	assert.Equal(t, "&exchange=NYSE&country=US", derived.Query())

	_, ok := base.Country()
	assert.False(t, ok)
}

func TestTimeSeriesParamsGetters(t *testing.T) {
	p := TimeSeriesParams{}
	_, ok := p.Exchange()
	assert.False(t, ok)
	_, ok = p.OutputSize()
	assert.False(t, ok)

	p = p.WithExchange("LSE").WithCountry("UK").WithInstrumentType(Index).WithOutputSize(1).WithFormat(Csv)

	ex, ok := p.Exchange()
	assert.True(t, ok)
	assert.Equal(t, "LSE", ex)

	c, ok := p.Country()
	assert.True(t, ok)
	assert.Equal(t, "UK", c)

	it, ok := p.InstrumentType()
	assert.True(t, ok)
	assert.Equal(t, Index, it)

	n, ok := p.OutputSize()
	assert.True(t, ok)
	assert.Equal(t, uint16(1), n)

	f, ok := p.Format()
	assert.True(t, ok)
	assert.Equal(t, Csv, f)
}

func TestTimeSeriesParamsValidate(t *testing.T) {
	assert.NoError(t, TimeSeriesParams{}.Validate())
	assert.NoError(t, TimeSeriesParams{}.WithOutputSize(1).Validate())
	assert.NoError(t, TimeSeriesParams{}.WithOutputSize(5000).Validate())
	assert.ErrorIs(t, TimeSeriesParams{}.WithOutputSize(0).Validate(), ErrOutputSizeRange)
	assert.ErrorIs(t, TimeSeriesParams{}.WithOutputSize(5001).Validate(), ErrOutputSizeRange)

	// Validation is opt-in; serialization still emits the value.
	assert.Equal(t, "&outputsize=0", TimeSeriesParams{}.WithOutputSize(0).Query())
}

func TestTimeSeriesParamsLogObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	params := TimeSeriesParams{}.WithInstrumentType(Stock).WithOutputSize(30)
	logger.Info().Object("params", params).Msg("")

	var line struct {
		Params map[string]string `json:"params"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, map[string]string{"type": "Stock", "outputsize": "30"}, line.Params)
}

func TestExchangesParams(t *testing.T) {
	p := ExchangesParams{}
	_, ok := p.ExchangeType()
	assert.False(t, ok)

	withType := p.WithExchangeType(ExchangeEtf)
	et, ok := withType.ExchangeType()
	assert.True(t, ok)
	assert.Equal(t, ExchangeEtf, et)

	_, ok = p.ExchangeType()
	assert.False(t, ok)
}
