package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("synapse %s\n", buildInfo.Version)
		fmt.Printf("  commit:  %s\n", buildInfo.Commit)
		fmt.Printf("  built:   %s\n", buildInfo.BuildDate)
		fmt.Printf("  go:      %s\n", buildInfo.GoVersion)
		fmt.Printf("  source:  %s\n", build.RepoURL())
		fmt.Printf("  authors: %s\n", strings.Join(build.Contributors(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
