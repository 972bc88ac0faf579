package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Alias1177/tdurl/tdrequest"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	TwelveAPIKey    string `env:"TWELVE_API_KEY"`
	Symbol          string `env:"SYMBOL" envDefault:"AAPL"`
	Interval        string `env:"INTERVAL" envDefault:"1day"`
	Exchange        string `env:"EXCHANGE"`
	Country         string `env:"COUNTRY"`
	InstrumentType  string `env:"INSTRUMENT_TYPE"`
	OutputSize      int    `env:"OUTPUT_SIZE"` // 0 means unset
	Format          string `env:"FORMAT"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout  int    `env:"REQUEST_TIMEOUT" envDefault:"30"` // seconds
	RequestsPerSec  int    `env:"REQUESTS_PER_SEC" envDefault:"5"`
	MaxRetries      int    `env:"MAX_RETRIES" envDefault:"3"`
	MaxRetryTimeout int    `env:"MAX_RETRY_TIMEOUT" envDefault:"30"` // seconds
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.TwelveAPIKey = os.Getenv("TWELVE_API_KEY")
	cfg.Symbol = getEnvWithDefault("SYMBOL", "AAPL")
	cfg.Interval = getEnvWithDefault("INTERVAL", "1day")
	cfg.Exchange = os.Getenv("EXCHANGE")
	cfg.Country = os.Getenv("COUNTRY")
	cfg.InstrumentType = os.Getenv("INSTRUMENT_TYPE")
	cfg.OutputSize = getEnvIntWithDefault("OUTPUT_SIZE", 0)
	cfg.Format = os.Getenv("FORMAT")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", 5)
	cfg.MaxRetries = getEnvIntWithDefault("MAX_RETRIES", 3)
	cfg.MaxRetryTimeout = getEnvIntWithDefault("MAX_RETRY_TIMEOUT", 30)

	if cfg.OutputSize < 0 || cfg.OutputSize > 65535 {
		return nil, fmt.Errorf("OUTPUT_SIZE %d does not fit in 16 bits", cfg.OutputSize)
	}

	return &cfg, nil
}

// ParsedInterval returns the typed form of Interval.
func (c *Config) ParsedInterval() (tdrequest.Interval, error) {
	return tdrequest.ParseInterval(c.Interval)
}

// TimeSeriesParams converts the optional fields into request parameters.
// Empty strings and a zero output size leave the field unset.
func (c *Config) TimeSeriesParams() (tdrequest.TimeSeriesParams, error) {
	var params tdrequest.TimeSeriesParams

	if c.Exchange != "" {
		params = params.WithExchange(c.Exchange)
	}
	if c.Country != "" {
		params = params.WithCountry(c.Country)
	}
	if c.InstrumentType != "" {
		t, err := tdrequest.ParseInstrumentType(c.InstrumentType)
		if err != nil {
			return params, fmt.Errorf("INSTRUMENT_TYPE: %w", err)
		}
		params = params.WithInstrumentType(t)
	}
	if c.OutputSize != 0 {
		params = params.WithOutputSize(uint16(c.OutputSize))
	}
	if c.Format != "" {
		f, err := tdrequest.ParseResponseDataFormat(c.Format)
		if err != nil {
			return params, fmt.Errorf("FORMAT: %w", err)
		}
		params = params.WithFormat(f)
	}

	return params, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
