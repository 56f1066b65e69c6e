package entity

import (
	"fmt"
	"strings"
)

// SessionSource tells which provider produced a session context.
type SessionSource string

const (
	SessionSourceLive     SessionSource = "live"
	SessionSourceDefaults SessionSource = "defaults"
)

// SessionContext holds the environment a graphical action needs to reach
// the user's desktop session.
type SessionContext struct {
	Source         SessionSource
	Home           string
	Display        string
	WaylandDisplay string
	RuntimeDir     string
	DBusAddress    string
	XAuthority     string
}

// Env returns the context as KEY=value pairs, skipping empty values.
func (c SessionContext) Env() []string {
	pairs := []struct{ k, v string }{
		{"DBUS_SESSION_BUS_ADDRESS", c.DBusAddress},
		{"XDG_RUNTIME_DIR", c.RuntimeDir},
		{"DISPLAY", c.Display},
		{"WAYLAND_DISPLAY", c.WaylandDisplay},
		{"XAUTHORITY", c.XAuthority},
		{"HOME", c.Home},
	}
	env := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.v == "" {
			continue
		}
		env = append(env, p.k+"="+p.v)
	}
	return env
}

// Preamble renders the shell header prepended to scripts without an interpreter line.
func (c SessionContext) Preamble() string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	for _, kv := range c.Env() {
		k, v, _ := strings.Cut(kv, "=")
		fmt.Fprintf(&b, "export %s=%s\n", k, shellQuote(v))
	}
	return b.String()
}

func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
			strings.ContainsRune("/:._-=,@+", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
