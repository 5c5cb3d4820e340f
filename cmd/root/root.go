// Package root contains the root command for the application
package root

import (
	"fjacquet/fattura-desk/internal/config"
	"fjacquet/fattura-desk/internal/downloader"
	"fjacquet/fattura-desk/internal/export"
	"fjacquet/fattura-desk/internal/history"
	"fjacquet/fattura-desk/internal/importer"
	"fjacquet/fattura-desk/internal/ledger"
	"fjacquet/fattura-desk/internal/store"
	"fjacquet/fattura-desk/internal/validator"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// ConfigPath is the explicit configuration file location, empty for
	// the default search order.
	ConfigPath string

	// Output is the optional CSV output file shared by the ledger
	// commands.
	Output string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fattura-desk",
		Short: "Bookkeeping assistant for Italian electronic invoices.",
		Long: `fattura-desk validates FatturaPA invoice files, registers them in the
local store and derives the monthly report, the movement ledger and the
overdue balances.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fattura-desk!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			store.SetLogger(Log)
			ledger.SetLogger(Log)
			validator.SetLogger(Log)
			importer.SetLogger(Log)
			downloader.SetLogger(Log)
			history.SetLogger(Log)
			export.SetLogger(Log)
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "Configuration file")
	Cmd.PersistentFlags().StringVarP(&Output, "output", "o", "", "Output CSV file")
}
