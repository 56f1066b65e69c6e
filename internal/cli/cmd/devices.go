package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/cli/styles"
	"github.com/bnema/synapse/internal/infrastructure/evdev"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List input devices",
	Long: `List the evdev input devices with their /dev/input/by-id links.

Use one of the paths with 'synapse config set-device'. The configured
device is marked. Reading device names usually needs root or membership
of the input group.`,
	RunE: runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	devices, err := evdev.ListDevices()
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}

	configured := app.Settings.Current().DevicePath
	rows := make([]styles.DeviceRow, 0, len(devices))
	for _, d := range devices {
		row := styles.DeviceRow{Path: d.Path, Name: d.Name, Links: d.Links}
		if d.Path == configured {
			row.Configured = true
		}
		for _, l := range d.Links {
			if l == configured {
				row.Configured = true
			}
		}
		rows = append(rows, row)
	}

	fmt.Println(styles.NewCLIRenderer(app.Theme).RenderDevices(rows))
	return nil
}
