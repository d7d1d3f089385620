// Package root contains the root command for the application
package root

import (
	"tamvonku/travel-stats/internal/config"
	"tamvonku/travel-stats/internal/currencyutils"
	"tamvonku/travel-stats/internal/dataset"
	"tamvonku/travel-stats/internal/dateutils"
	"tamvonku/travel-stats/internal/export"
	"tamvonku/travel-stats/internal/geo"
	"tamvonku/travel-stats/internal/stats"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every subcommand
type CommonFlags struct {
	AccommodationFile string
	TransportFile     string
	From              string
	To                string
	Countries         []string
	Platforms         []string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved configuration, populated in PersistentPreRun
	Cfg *config.Config

	// Loader is the shared dataset loader, populated in PersistentPreRun
	Loader *dataset.Loader

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "travel-stats",
		Short: "A CLI tool to compute travel statistics from accommodation and transport spreadsheets.",
		Long: `travel-stats reads accommodation and transport bookings from CSV files
with European number and date formats and computes trip metrics: days on the
road, costs per person and night, per-country summaries, flight totals and a
map-ready country list.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to travel-stats!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger on every internal package
			dataset.SetLogger(Log)
			stats.SetLogger(Log)
			geo.SetLogger(Log)
			export.SetLogger(Log)
			currencyutils.SetLogger(Log)
			dateutils.SetLogger(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			// Flags win over config; config fills in whatever was not given
			if SharedFlags.AccommodationFile == "" {
				SharedFlags.AccommodationFile = cfg.Data.AccommodationFile
			}
			if SharedFlags.TransportFile == "" {
				SharedFlags.TransportFile = cfg.Data.TransportFile
			}

			if cfg.CSV.Delimiter != "" {
				export.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}

			Loader = dataset.NewLoader(cfg.Data.CacheEnabled)
		},
	}

	// SharedFlags holds the common flag values, accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.AccommodationFile, "accommodation", "a", "", "Accommodation CSV file (default from config)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.TransportFile, "transport", "t", "", "Transport CSV file (default from config)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.From, "from", "", "Only include stays checked in on or after this date (DD.MM.YYYY)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.To, "to", "", "Only include stays checked in on or before this date (DD.MM.YYYY)")
	Cmd.PersistentFlags().StringSliceVar(&SharedFlags.Countries, "country", nil, "Only include stays in these countries (repeatable)")
	Cmd.PersistentFlags().StringSliceVar(&SharedFlags.Platforms, "platform", nil, "Only include stays booked via these platforms (repeatable)")
}
