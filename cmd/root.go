package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/s0up4200/safetydash/config"
	"github.com/s0up4200/safetydash/dashboard"
	"github.com/s0up4200/safetydash/vehicles"
)

var (
	cfgFile         string
	cfg             *config.Config
	logger          zerolog.Logger
	dashboardClient *dashboard.Client
	vehiclesClient  *vehicles.Client

	// Persistent flags
	baseURL  string
	logLevel string
	jsonLogs bool
	strict   bool

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "safetydash",
	Short: "Query the vehicle-safety dashboard service",
	Long: `safetydash is a CLI for the vehicle-safety dashboard service. It shows
dashboard recall analytics, searches vehicles and fetches detailed safety
information by id or by year, make, model, trim and series.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// SetVersion records build information for the version and update commands
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	shutdownTelemetry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override api.base_url")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "log as JSON")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "validate every decoded vehicle (overrides search.strict)")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(vehicleCmd)
	rootCmd.AddCommand(ymmtCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line overrides
	if cmd.Flags().Changed("base-url") {
		cfg.API.BaseURL = baseURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if jsonLogs {
		cfg.Logging.Format = "json"
	}
	if cmd.Flags().Changed("strict") {
		cfg.Search.Strict = strict
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	var tp trace.TracerProvider
	if cfg.Telemetry.Enabled {
		tracerProvider, err = newTracerProvider(cmd.Context(), cfg.Telemetry)
		if err != nil {
			return err
		}
		otel.SetTracerProvider(tracerProvider)
		tp = tracerProvider
	}

	httpClient := newHTTPClient(cfg.API, cfg.Telemetry, tp)

	dashboardClient, err = dashboard.NewClient(cfg.API.BaseURL, logger, dashboard.WithHTTPClient(httpClient))
	if err != nil {
		return fmt.Errorf("failed to create dashboard client: %w", err)
	}

	vehicleOpts := []vehicles.Option{
		vehicles.WithHTTPClient(httpClient),
		vehicles.WithPageSize(cfg.Search.PageSize),
	}
	if cfg.Search.Strict {
		vehicleOpts = append(vehicleOpts, vehicles.WithStrictValidation())
	}
	vehiclesClient, err = vehicles.NewClient(cfg.API.BaseURL, logger, vehicleOpts...)
	if err != nil {
		return fmt.Errorf("failed to create vehicles client: %w", err)
	}

	logger.Debug().Str("base_url", cfg.API.BaseURL).Msg("Clients initialized")
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Color only when stderr is a terminal
	color := cfg.Color && (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
