package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/cli/styles"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/infrastructure/config"
)

var (
	configJSON      bool
	ignoreRemove    bool
	schemaOutputDir string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage device settings",
	Long: `View and change settings.json: the device to listen on and the key
codes that are never treated as macro triggers.

A running engine picks up changes without a restart.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE:  runConfigShow,
}

var configSetDeviceCmd = &cobra.Command{
	Use:   "set-device <path>",
	Short: "Set the input device path",
	Long: `Set the evdev device to listen on. Prefer a /dev/input/by-id link, which
survives reboots; see 'synapse devices'.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSetDevice,
}

var configIgnoreCmd = &cobra.Command{
	Use:   "ignore <code>...",
	Short: "Add key codes to the ignore list",
	Long: `Add key codes to the ignore list, or remove them with --remove.

Modifier codes sent by the pad firmware alongside its own keys belong here.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConfigIgnore,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open settings.json in $VISUAL or $EDITOR",
	RunE:  runConfigEdit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of settings.json",
	Long: `Print the JSON schema of settings.json, or write settings.schema.json into
a directory with --output. Editors use it for completion and validation.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetDeviceCmd, configIgnoreCmd, configEditCmd, configSchemaCmd)

	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "output as JSON")
	configIgnoreCmd.Flags().BoolVar(&ignoreRemove, "remove", false, "remove the codes instead of adding them")
	configSchemaCmd.Flags().StringVarP(&schemaOutputDir, "output", "o", "", "write settings.schema.json into this directory")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	settings := app.Settings.Current()
	if configJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(settings)
	}
	fmt.Println(styles.NewCLIRenderer(app.Theme).RenderSettings(app.Settings.Path(), settings))
	return nil
}

func runConfigSetDevice(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := strings.TrimSpace(args[0])
	if path == "" {
		return fmt.Errorf("device path is empty")
	}

	settings := app.Settings.Current()
	settings.DevicePath = path
	if err := app.Settings.Save(app.Ctx(), settings); err != nil {
		return err
	}

	renderer := styles.NewCLIRenderer(app.Theme)
	fmt.Println(renderer.RenderResult(true, "device set to "+path))
	if _, err := os.Stat(path); err != nil {
		fmt.Println(renderer.RenderResult(false, "warning: "+err.Error()))
	}
	return nil
}

func runConfigIgnore(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	codes := make([]entity.EventCode, 0, len(args))
	for _, arg := range args {
		code, err := entity.ParseEventCode(arg)
		if err != nil {
			return err
		}
		codes = append(codes, code)
	}

	settings := updateIgnored(app.Settings.Current(), codes, ignoreRemove)
	if err := app.Settings.Save(app.Ctx(), settings); err != nil {
		return err
	}
	fmt.Println(styles.NewCLIRenderer(app.Theme).RenderSettings(app.Settings.Path(), app.Settings.Current()))
	return nil
}

// updateIgnored adds or removes codes from the ignore list.
func updateIgnored(settings entity.Settings, codes []entity.EventCode, remove bool) entity.Settings {
	if !remove {
		settings.IgnoredKeys = append(append([]entity.EventCode{}, settings.IgnoredKeys...), codes...)
		return settings.Normalize()
	}

	drop := make(map[entity.EventCode]struct{}, len(codes))
	for _, c := range codes {
		drop[c] = struct{}{}
	}
	kept := make([]entity.EventCode, 0, len(settings.IgnoredKeys))
	for _, c := range settings.IgnoredKeys {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}
	settings.IgnoredKeys = kept
	return settings.Normalize()
}

// runConfigEdit opens the settings file in the user's editor.
func runConfigEdit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.Settings.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := app.Settings.Save(app.Ctx(), app.Settings.Current()); err != nil {
			return err
		}
	}

	// Prefer $VISUAL, fall back to $EDITOR
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if schemaOutputDir != "" {
		path, err := config.WriteSchemaFile(schemaOutputDir)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
