package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/cli/model"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Open the interactive deck",
	Long: `Show the deck grid and run the engine behind it.

Select a slot and press enter, then press the physical key to bind it.
After a key is learned, pick an application or write a custom script
for it. Logs are only written to the log file (--log-file) while the
deck is open.`,
	RunE: runDeck,
}

func init() {
	rootCmd.AddCommand(deckCmd)
}

func runDeck(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	bridge := model.NewBridge()
	app.Controller.SetStatusObserver(bridge)
	app.Controller.SetCaptureHandler(bridge)

	engineDone := make(chan error, 1)
	go func() {
		engineDone <- serve(ctx, app)
	}()

	m := model.NewDeckModel(ctx, app.Theme, model.DeckModelConfig{
		Controller: app.Controller,
		Searcher:   app.SearchAppsUC,
		Bridge:     bridge,
		DevicePath: app.Settings.Current().DevicePath,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()

	cancel()
	if engineErr := <-engineDone; err == nil {
		err = engineErr
	}
	return err
}
