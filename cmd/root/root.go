// Package root contains the root command for the application
package root

import (
	"ledgerlens/internal/categorizer"
	"ledgerlens/internal/config"
	"ledgerlens/internal/fileutils"
	"ledgerlens/internal/ledger"
	"ledgerlens/internal/logging"
	"ledgerlens/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	StoreFile string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the resolved application configuration
	Cfg *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ledgerlens",
		Short: "Classify personal ledger transactions into spending categories.",
		Long: `ledgerlens ingests a transaction ledger (CSV or XLSX), classifies every
transaction into a spending category using a learned keyword store, accepts
corrections that teach the store new keywords, and produces per-category
spending summaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ledgerlens!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg

			// Hand the configured logger to every package that logs.
			store.SetLogger(Log)
			ledger.SetLogger(Log)
			fileutils.SetLogger(Log)
			categorizer.SetLogger(logging.NewLogrusAdapterFromLogger(Log))

			if Cfg.CSV.Delimiter != "," {
				Log.WithField("delimiter", Cfg.CSV.Delimiter).Debug("Setting CSV delimiter from configuration")
				ledger.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input ledger file (CSV or XLSX)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.StoreFile, "store", "s", "", "Category store file (default from configuration)")
}

// StorePath resolves the category store path: the --store flag wins over the
// configured default.
func StorePath() string {
	if SharedFlags.StoreFile != "" {
		return SharedFlags.StoreFile
	}
	return Cfg.Store.File
}

// OpenStore loads the category store for this invocation. Loading never
// fails: a missing or corrupt file yields the default store.
func OpenStore() *store.CategoryStore {
	return store.Load(StorePath())
}
