package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
)

const shebang = "#!"

// DispatchActionUseCase implements port.ActionDispatcher. The session context
// is discovered once, when the use case is built.
type DispatchActionUseCase struct {
	launcher port.ProcessLauncher
	scripts  port.ScriptWriter
	session  entity.SessionContext
}

var _ port.ActionDispatcher = (*DispatchActionUseCase)(nil)

// NewDispatchActionUseCase resolves the session context through provider and
// creates the dispatcher.
func NewDispatchActionUseCase(
	ctx context.Context,
	provider port.SessionContextProvider,
	launcher port.ProcessLauncher,
	scripts port.ScriptWriter,
) *DispatchActionUseCase {
	log := logging.FromContext(ctx)

	session, err := provider.SessionContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("session context unavailable, actions run without it")
	} else {
		log.Debug().
			Str("source", string(session.Source)).
			Str("display", session.Display).
			Str("wayland", session.WaylandDisplay).
			Msg("session context resolved")
	}

	return &DispatchActionUseCase{
		launcher: launcher,
		scripts:  scripts,
		session:  session,
	}
}

// Session returns the context actions are launched with.
func (uc *DispatchActionUseCase) Session() entity.SessionContext {
	return uc.session
}

// Dispatch launches the action's script detached, with the session environment.
func (uc *DispatchActionUseCase) Dispatch(ctx context.Context, action entity.Action) error {
	if action.Path == "" {
		return fmt.Errorf("%w: action has no script", entity.ErrDispatchFailed)
	}

	err := uc.launcher.Launch(ctx, port.LaunchRequest{
		Path: action.Path,
		Env:  uc.session.Env(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrDispatchFailed, err)
	}
	return nil
}

// Finalize writes content as an executable script named after name and
// returns it as an action. Content without an interpreter line is prefixed
// with the session preamble.
func (uc *DispatchActionUseCase) Finalize(ctx context.Context, code entity.EventCode, name, content string) (entity.Action, error) {
	if strings.TrimSpace(content) == "" {
		return entity.Action{}, entity.ErrEmptyScript
	}
	if name == "" {
		name = CustomActionName(code)
	}

	script := content
	if !strings.HasPrefix(content, shebang) {
		script = uc.session.Preamble() + content
	}
	if !strings.HasSuffix(script, "\n") {
		script += "\n"
	}

	path, err := uc.scripts.WriteScript(ctx, name, []byte(script))
	if err != nil {
		return entity.Action{}, fmt.Errorf("failed to write script: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("code", int(code)).Str("path", path).Msg("script finalized")
	return entity.Action{Path: path}, nil
}

// AppActionName is the script name used when an application is picked for a key.
func AppActionName(app string) string {
	return "Open_" + app
}

// AppActionContent is the script body that starts an application command.
func AppActionContent(command string) string {
	return "exec " + command
}

// CustomActionName is the script name used for hand-written scripts.
func CustomActionName(code entity.EventCode) string {
	return "Custom_" + strconv.Itoa(int(code))
}
