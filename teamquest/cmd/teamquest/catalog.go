package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell/questcatalog"
)

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Quest catalog operations",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a quest catalog file",
	Long: `Validate a quest catalog YAML file and print the number of active quests per difficulty.
Without a file the embedded default catalog is checked.

Examples:
  teamquest catalog check quests.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogCheck,
}

func runCatalogCheck(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	catalog, err := questcatalog.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "catalog ok: %d quests\n", len(catalog.Quests()))

	for _, difficulty := range []core.Difficulty{core.DifficultyEasy, core.DifficultyNormal, core.DifficultyHard} {
		fmt.Fprintf(out, "  %-6s %d active\n", difficulty, catalog.ActiveCount(difficulty))
	}

	return nil
}
