package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdgadapter "github.com/bnema/synapse/internal/infrastructure/xdg"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to ~/.local/share/man/man1/ so they
are available via 'man synapse'. You may need to run 'mandb' to update
the man page index.

Examples:
  synapse gen-docs                      # Install man pages
  synapse gen-docs --format markdown    # Generate markdown docs in ./docs
  synapse gen-docs --output ./man       # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := xdgadapter.New().ManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output
	rootCmd.DisableAutoGenTag = true

	var (
		ext string
		err error
	)
	switch genDocsFormat {
	case "man":
		ext = ".1"
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "SYNAPSE",
			Section: "1",
			Source:  "synapse " + buildInfo.Version,
			Manual:  "Synapse Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}, outputDir)
	case "markdown":
		ext = ".md"
		err = doc.GenMarkdownTree(rootCmd, outputDir)
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
	if err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	fmt.Printf("Generated %s docs in %s\n", genDocsFormat, outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil // Non-fatal
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
	return nil
}
