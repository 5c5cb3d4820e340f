package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/fattura-desk/cmd/download"
	"fjacquet/fattura-desk/cmd/history"
	"fjacquet/fattura-desk/cmd/ingest"
	"fjacquet/fattura-desk/cmd/movements"
	"fjacquet/fattura-desk/cmd/overdue"
	"fjacquet/fattura-desk/cmd/report"
	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/cmd/validate"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize root command and flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(movements.Cmd)
	root.Cmd.AddCommand(overdue.Cmd)
	root.Cmd.AddCommand(history.Cmd)
	root.Cmd.AddCommand(download.Cmd)
	root.Cmd.AddCommand(ingest.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before any command output happens.
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
