// Package filesystem stores generated action scripts on disk.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/logging"
)

const (
	scriptExt  = ".sh"
	scriptPerm = 0o755
	dirPerm    = 0o755
)

// Adapter implements port.ScriptWriter over a scripts directory.
type Adapter struct {
	dir string
}

// New creates a script writer rooted at dir.
func New(dir string) *Adapter {
	return &Adapter{dir: dir}
}

// WriteScript writes content to <dir>/<sanitized name>.sh with mode 0755,
// overwriting an existing script of the same name.
func (a *Adapter) WriteScript(ctx context.Context, name string, content []byte) (string, error) {
	if err := os.MkdirAll(a.dir, dirPerm); err != nil {
		return "", fmt.Errorf("create scripts directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(a.dir, SanitizeName(name)+scriptExt))
	if err != nil {
		return "", fmt.Errorf("resolve script path: %w", err)
	}

	if err := os.WriteFile(path, content, scriptPerm); err != nil {
		return "", fmt.Errorf("write script: %w", err)
	}
	// WriteFile keeps the mode of an existing file and is subject to umask.
	if err := os.Chmod(path, scriptPerm); err != nil {
		return "", fmt.Errorf("chmod script: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("script written")
	return path, nil
}

// SanitizeName turns a display name into a safe file stem:
// spaces become underscores and path separators are dropped.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == ' ' || r == '\t':
			b.WriteRune('_')
		case r == '/' || r == '\\' || r == 0:
		default:
			b.WriteRune(r)
		}
	}
	stem := strings.TrimLeft(b.String(), ".")
	if stem == "" {
		return "action"
	}
	return stem
}

var _ port.ScriptWriter = (*Adapter)(nil)
