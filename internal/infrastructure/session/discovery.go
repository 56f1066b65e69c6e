// Package session discovers the desktop session environment actions run in.
package session

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
	"golang.org/x/sys/unix"
)

// sessionProcess matches command names of processes that carry the session environment.
var sessionProcess = regexp.MustCompile(`(?i)session|shell|plasma|xfce|cinnamon|gnome`)

// ProcDiscovery reads the environment of a running session process from procfs.
type ProcDiscovery struct {
	procRoot string
	uid      uint32
	home     string
}

var _ port.SessionContextProvider = (*ProcDiscovery)(nil)

// NewProcDiscovery scans /proc for processes owned by uid.
func NewProcDiscovery(uid uint32, home string) *ProcDiscovery {
	return &ProcDiscovery{procRoot: "/proc", uid: uid, home: home}
}

// SessionContext returns the variables of the first session-like process of
// the user that exposes a display or bus address.
func (p *ProcDiscovery) SessionContext(ctx context.Context) (entity.SessionContext, error) {
	log := logging.FromContext(ctx)

	pids, err := p.candidates()
	if err != nil {
		return entity.SessionContext{}, fmt.Errorf("%w: %v", entity.ErrSessionUnavailable, err)
	}

	for _, pid := range pids {
		data, err := os.ReadFile(filepath.Join(p.procRoot, strconv.Itoa(pid), "environ"))
		if err != nil {
			log.Trace().Err(err).Int("pid", pid).Msg("environ unreadable")
			continue
		}
		sc := ParseEnviron(data)
		if sc.Display == "" && sc.WaylandDisplay == "" && sc.DBusAddress == "" {
			continue
		}
		sc.Source = entity.SessionSourceLive
		if sc.Home == "" {
			sc.Home = p.home
		}
		log.Debug().Int("pid", pid).Str("display", sc.Display).Str("wayland", sc.WaylandDisplay).Msg("session context discovered")
		return sc, nil
	}

	return entity.SessionContext{}, fmt.Errorf("%w: no session process for uid %d", entity.ErrSessionUnavailable, p.uid)
}

// candidates lists pids owned by the user whose name looks like a session, oldest first.
func (p *ProcDiscovery) candidates() ([]int, error) {
	entries, err := os.ReadDir(p.procRoot)
	if err != nil {
		return nil, err
	}

	var pids []int
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil || !e.IsDir() {
			continue
		}
		dir := filepath.Join(p.procRoot, e.Name())

		var st unix.Stat_t
		if err := unix.Stat(dir, &st); err != nil || st.Uid != p.uid {
			continue
		}
		comm, err := os.ReadFile(filepath.Join(dir, "comm"))
		if err != nil || !sessionProcess.Match(bytes.TrimSpace(comm)) {
			continue
		}
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids, nil
}

// ParseEnviron extracts the session variables from a NUL separated environ block.
func ParseEnviron(data []byte) entity.SessionContext {
	var sc entity.SessionContext
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(splitNUL)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		switch key {
		case "DBUS_SESSION_BUS_ADDRESS":
			sc.DBusAddress = value
		case "XDG_RUNTIME_DIR":
			sc.RuntimeDir = value
		case "DISPLAY":
			sc.Display = value
		case "WAYLAND_DISPLAY":
			sc.WaylandDisplay = value
		case "XAUTHORITY":
			sc.XAuthority = value
		case "HOME":
			sc.Home = value
		}
	}
	return sc
}

func splitNUL(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
