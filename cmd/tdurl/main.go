package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Alias1177/tdurl/internal/api/twelvedata"
	"github.com/Alias1177/tdurl/internal/config"
	"github.com/Alias1177/tdurl/tdrequest"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	logOutput io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "tdurl",
	Short: "Build Twelve Data request URLs",
	Long: `tdurl prints request URLs for the Twelve Data REST API.
Defaults come from the environment (or a .env file); flags override them.
With --fetch the URL is also requested and the response body is written to stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel, _ := cmd.Flags().GetString("log-level")
		if logLevel == "" {
			logLevel = cfg.LogLevel
		}
		setupLogging(logLevel)

		if cmd.Flags().Changed("apikey") {
			cfg.TwelveAPIKey, _ = cmd.Flags().GetString("apikey")
		}
		return nil
	},
}

var timeSeriesCmd = &cobra.Command{
	Use:   "time-series [symbol]",
	Short: "Build a time_series URL",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			cfg.Symbol = args[0]
		}
		overrideString(cmd, "interval", &cfg.Interval)
		overrideString(cmd, "exchange", &cfg.Exchange)
		overrideString(cmd, "country", &cfg.Country)
		overrideString(cmd, "type", &cfg.InstrumentType)
		overrideString(cmd, "format", &cfg.Format)

		interval, err := cfg.ParsedInterval()
		if err != nil {
			return err
		}
		params, err := cfg.TimeSeriesParams()
		if err != nil {
			return err
		}
		// An explicit -n wins over --days and is kept even when it is 0.
		if cmd.Flags().Changed("outputsize") {
			n, _ := cmd.Flags().GetUint16("outputsize")
			params = params.WithOutputSize(n)
		} else if days, _ := cmd.Flags().GetInt("days"); days > 0 {
			params = params.WithOutputSize(tdrequest.OutputSizeForDays(interval, days))
		}
		if err := params.Validate(); err != nil {
			log.Warn().Err(err).Msg("Server will likely reject this request")
		}

		url := tdrequest.NewRequestBuilder(cfg.TwelveAPIKey).TimeSeries(cfg.Symbol, interval, params)
		log.Debug().
			Str("symbol", cfg.Symbol).
			Stringer("interval", interval).
			Object("params", params).
			Str("url", tdrequest.Redact(url)).
			Msg("Built time_series URL")

		return emitCmd(cmd, url)
	},
}

var exchangesCmd = &cobra.Command{
	Use:   "exchanges",
	Short: "Build the exchanges URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := tdrequest.NewRequestBuilder(cfg.TwelveAPIKey)
		if pathOnly, _ := cmd.Flags().GetBool("path-only"); pathOnly {
			fmt.Fprintln(cmd.OutOrStdout(), b.Exchanges())
			return nil
		}
		return emitCmd(cmd, b.ExchangesURL())
	},
}

func emitCmd(cmd *cobra.Command, url string) error {
	fetch, _ := cmd.Flags().GetBool("fetch")
	return emit(cmd.Context(), cmd.OutOrStdout(), fetch, url)
}

// emit prints url, or with fetch set requests it and prints the body.
func emit(ctx context.Context, out io.Writer, fetch bool, url string) error {
	if !fetch {
		fmt.Fprintln(out, url)
		return nil
	}

	if cfg.TwelveAPIKey == "" {
		log.Warn().Msg("TWELVE_API_KEY is empty, the request will be rejected")
	}

	client := twelvedata.NewClient(twelvedata.ClientOptions{
		APIKey:          cfg.TwelveAPIKey,
		RequestTimeout:  time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec:  cfg.RequestsPerSec,
		MaxRetries:      cfg.MaxRetries,
		MaxRetryTimeout: time.Duration(cfg.MaxRetryTimeout) * time.Second,
	})

	body, err := client.Fetch(ctx, url)
	if err != nil {
		return err
	}
	_, err = out.Write(body)
	return err
}

func overrideString(cmd *cobra.Command, flag string, dst *string) {
	if cmd.Flags().Changed(flag) {
		*dst, _ = cmd.Flags().GetString(flag)
	}
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: logOutput, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		log.Warn().Str("level", logLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func tokens[T fmt.Stringer](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return strings.Join(out, ", ")
}

func init() {
	rootCmd.PersistentFlags().String("apikey", "", "API key, overrides TWELVE_API_KEY")
	rootCmd.PersistentFlags().String("log-level", "", "zerolog level, overrides LOG_LEVEL")
	rootCmd.PersistentFlags().Bool("fetch", false, "request the URL and print the response body; query values are percent-encoded for the request only")

	timeSeriesCmd.Flags().StringP("interval", "i", "", "one of: "+tokens(tdrequest.Intervals()))
	timeSeriesCmd.Flags().StringP("exchange", "e", "", "exchange the instrument is traded on")
	timeSeriesCmd.Flags().StringP("country", "c", "", "country the instrument is traded in")
	timeSeriesCmd.Flags().StringP("type", "t", "", "one of: "+tokens(tdrequest.InstrumentTypes()))
	timeSeriesCmd.Flags().Uint16P("outputsize", "n", 0, "number of data points, 1 to 5000")
	timeSeriesCmd.Flags().Int("days", 0, "derive outputsize from a lookback window in days")
	timeSeriesCmd.Flags().StringP("format", "f", "", "one of: "+tokens(tdrequest.ResponseDataFormats()))

	exchangesCmd.Flags().Bool("path-only", false, "print only the endpoint path")

	rootCmd.AddCommand(timeSeriesCmd, exchangesCmd)
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
