package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ledgerlens/cmd/batch"
	"ledgerlens/cmd/categories"
	"ledgerlens/cmd/classify"
	"ledgerlens/cmd/correct"
	"ledgerlens/cmd/root"
	"ledgerlens/cmd/summary"
	"ledgerlens/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	logLevel := configureLogLevelDirectly()
	logging.SetAllLogLevels(logLevel)

	// 3. Initialize root command and register subcommands
	root.Init()
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(correct.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
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
// instances and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
