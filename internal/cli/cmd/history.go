package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/cli/styles"
)

const defaultHistoryLimit = 50

var (
	historyJSON  bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent deck activity",
	Long:  `List learned bindings, launched scripts, failed launches and assigned actions, newest first.`,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded activity",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", defaultHistoryLimit, "maximum entries to show")
}

func runHistory(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	entries, err := app.Activity.Recent(app.Ctx(), historyLimit)
	if err != nil {
		return fmt.Errorf("read activity: %w", err)
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	fmt.Println(styles.NewCLIRenderer(app.Theme).RenderActivity(entries))
	return nil
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Activity.Clear(app.Ctx()); err != nil {
		return fmt.Errorf("clear activity: %w", err)
	}
	fmt.Println(styles.NewCLIRenderer(app.Theme).RenderResult(true, "activity cleared"))
	return nil
}
