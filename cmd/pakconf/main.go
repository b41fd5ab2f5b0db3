package main

import (
	"encoding/json"
	"fmt"

	"github.com/pakconf/pakconf/internal/config"
	"github.com/pakconf/pakconf/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// pakconf resolves the ambient package-manager configuration (rc files,
// npm_config_* environment variables) and prints the flattened result as
// JSON on stdout. Logs go to stderr.
func main() {
	printBuildInfo()

	log := logger.NewLogger("pakconf")
	resolved, err := config.Resolve(log, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	out, err := json.MarshalIndent(resolved.Flat(), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding configuration")
	}

	fmt.Println(string(out))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
