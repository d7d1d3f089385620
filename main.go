package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tamvonku/travel-stats/cmd/countries"
	exportcmd "tamvonku/travel-stats/cmd/export"
	"tamvonku/travel-stats/cmd/flights"
	"tamvonku/travel-stats/cmd/root"
	"tamvonku/travel-stats/cmd/summary"
	"tamvonku/travel-stats/cmd/worldmap"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logging happens
	configureLogLevelDirectly()

	// 3. Initialize root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(countries.Cmd)
	root.Cmd.AddCommand(worldmap.Cmd)
	root.Cmd.AddCommand(flights.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
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
// instances, both existing and future
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
