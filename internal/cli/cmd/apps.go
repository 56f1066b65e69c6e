package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/cli/styles"
)

const defaultAppsLimit = 20

var (
	appsJSON  bool
	appsLimit int
)

var appsCmd = &cobra.Command{
	Use:   "apps [query]",
	Short: "Search installed applications",
	Long: `Fuzzy-search the desktop applications that can be bound to a key.

Without a query every application is listed, sorted by name.`,
	RunE: runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.Flags().BoolVar(&appsJSON, "json", false, "output as JSON")
	appsCmd.Flags().IntVarP(&appsLimit, "limit", "n", defaultAppsLimit, "maximum results (0 for all)")
}

func runApps(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	results, err := app.SearchAppsUC.Search(app.Ctx(), strings.Join(args, " "), appsLimit)
	if err != nil {
		return err
	}

	if appsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	fmt.Println(styles.NewCLIRenderer(app.Theme).RenderApps(results))
	return nil
}
