package tdrequest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputSizeForDays(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		days     int
		expected uint16
	}{
		{"hourly over five days", Hours1, 5, 132},
		{"daily over a month", Days1, 30, 33},
		{"weekly over a year", Weeks1, 365, 57},
		{"monthly over two years", Months1, 730, 26},
		{"monthly under a month", Months1, 10, 1},
		{"minute bars hit the cap", Minutes1, 30, MaxOutputSize},
		{"zero days counts as one", Days1, 0, 1},
		{"huge window stays capped", Minutes1, 1 << 62, MaxOutputSize},
		{"huge monthly window stays capped", Months1, 1 << 62, MaxOutputSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OutputSizeForDays(tt.interval, tt.days))
		})
	}
}

func TestOutputSizeForDaysAlwaysValidates(t *testing.T) {
	for _, i := range Intervals() {
		n := OutputSizeForDays(i, 90)
		assert.NoError(t, TimeSeriesParams{}.WithOutputSize(n).Validate(), i.String())
	}
}
