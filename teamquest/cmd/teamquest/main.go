// Package main implements the teamquest CLI: the API server, the schema migration and catalog checks.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath points to the optional YAML config file. Environment variables override it.
	configPath string

	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "teamquest",
	Short: "Team habit quests with daily quest sets, ranks and an MVP",
	Long: `teamquest runs the TeamQuest JSON API and its daily rollover job.

Configuration is read from the YAML file given with --config and then from
TEAMQUEST_* environment variables, e.g. TEAMQUEST_SERVER_HTTP_PORT=8080.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}
