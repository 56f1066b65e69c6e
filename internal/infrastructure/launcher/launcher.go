// Package launcher starts action scripts detached from the engine.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/infrastructure/env"
	"github.com/bnema/synapse/internal/logging"
)

const defaultPath = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"

// Launcher implements port.ProcessLauncher with setsid children.
// When the engine runs elevated, children drop to the target user.
type Launcher struct {
	target   *env.User
	elevated bool
}

var _ port.ProcessLauncher = (*Launcher)(nil)

// New creates a launcher. target may be nil, in which case children inherit
// the engine's credentials.
func New(target *env.User, elevated bool) *Launcher {
	return &Launcher{target: target, elevated: elevated}
}

// Launch starts req.Path and returns once the child is running.
// The child is reaped in the background; its exit status is discarded.
func (l *Launcher) Launch(ctx context.Context, req port.LaunchRequest) error {
	log := logging.FromContext(ctx)

	// Not CommandContext: the child must outlive the request.
	cmd := exec.Command(req.Path) //nolint:gosec // paths come from the user's own action table
	cmd.Env = l.environ(req.Env)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if l.target != nil {
		cmd.Dir = l.target.Home
	}
	cmd.SysProcAttr.Credential = l.credential()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", req.Path, err)
	}

	pid := cmd.Process.Pid
	go func() {
		_ = cmd.Wait()
	}()

	log.Debug().Str("path", req.Path).Int("pid", pid).Msg("action launched")
	return nil
}

// credential drops to the target user when elevated, keeping its
// supplementary groups. Nil means the child inherits our credentials.
func (l *Launcher) credential() *syscall.Credential {
	if !l.elevated || l.target == nil || l.target.UID == 0 {
		return nil
	}
	groups := l.target.Groups
	if len(groups) == 0 {
		groups = []uint32{l.target.GID}
	}
	return &syscall.Credential{
		Uid:    l.target.UID,
		Gid:    l.target.GID,
		Groups: groups,
	}
}

// environ builds a minimal environment; session variables from extra win.
func (l *Launcher) environ(extra []string) []string {
	path := os.Getenv("PATH")
	if path == "" {
		path = defaultPath
	}
	out := []string{"PATH=" + path}
	if l.target != nil {
		out = append(out, "USER="+l.target.Name, "LOGNAME="+l.target.Name, "HOME="+l.target.Home)
	}
	if lang := os.Getenv("LANG"); lang != "" {
		out = append(out, "LANG="+lang)
	}
	return append(out, extra...)
}
