package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/application/usecase"
	"github.com/bnema/synapse/internal/cli"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/infrastructure/notify"
	"github.com/bnema/synapse/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the headless engine",
	Long: `Open the configured device and launch the bound script for every key press.

Edits of settings.json are picked up while running: the device is reopened
with the new path and ignore list. Stops on SIGINT or SIGTERM.`,
	RunE: runEngine,
}

var runNoNotify bool

func init() {
	runCmd.Flags().BoolVar(&runNoNotify, "no-notify", false, "do not send desktop notifications")
	rootCmd.AddCommand(runCmd)
}

func runEngine(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logging.RecoverAndRepanic(ctx, "run")

	log := logging.FromContext(ctx)
	var observer port.StatusObserver = port.StatusObserverFunc(func(s entity.Status) {
		log.Info().Str("status", string(s.Kind)).Msg(s.String())
	})
	if !runNoNotify {
		notifier := notify.New(app.Dispatcher.Session().DBusAddress)
		defer notifier.Close()
		statusNotifier := usecase.NewStatusNotifier(ctx, notifier, observer)
		defer statusNotifier.Wait()
		observer = statusNotifier
	}
	app.Controller.SetStatusObserver(observer)

	return serve(ctx, app)
}

// serve starts the engine and blocks until ctx is done.
func serve(ctx context.Context, app *cli.App) error {
	log := logging.FromContext(ctx)

	if err := app.Runtime.Start(ctx, app.Settings.Current()); err != nil {
		// Not fatal: a settings edit can bring the device back.
		log.Warn().Err(err).Msg("device not available, waiting for a settings change")
	}

	app.Settings.OnChange(func(s entity.Settings) {
		if err := app.Runtime.Apply(ctx, s); err != nil {
			log.Warn().Err(err).Str("device", s.DevicePath).Msg("failed to apply new settings")
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Settings.Watch(gctx)
	})
	g.Go(func() error {
		if err := app.WarmDatabase(gctx); err != nil {
			log.Warn().Err(err).Msg("activity log unavailable")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return app.Runtime.Stop()
	})

	log.Info().Str("device", app.Settings.Current().DevicePath).Msg("synapse running")
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info().Msg("synapse stopped")
	return err
}
