// Package env resolves the account and privileges the process acts for.
package env

import (
	"fmt"
	"os"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// User is the non-elevated account actions and data directories belong to.
type User struct {
	Name string
	UID  uint32
	GID  uint32
	Home string
	// Groups holds the supplementary group ids, primary group included.
	Groups []uint32
}

// Elevated reports whether the process runs with an effective uid of root.
func Elevated() bool {
	return unix.Geteuid() == 0
}

type lookups struct {
	getenv  func(string) string
	byName  func(string) (*user.User, error)
	byID    func(string) (*user.User, error)
	current func() (*user.User, error)
	groups  func(*user.User) ([]string, error)
}

var system = lookups{
	getenv:  os.Getenv,
	byName:  user.Lookup,
	byID:    user.LookupId,
	current: user.Current,
	groups:  (*user.User).GroupIds,
}

// TargetUser resolves the real user behind sudo or pkexec.
// Without elevation helpers it falls back to $USER, then the current account.
func TargetUser() (*User, error) {
	return system.resolve()
}

func (l lookups) resolve() (*User, error) {
	if name := l.getenv("SUDO_USER"); name != "" && name != "root" {
		if u, err := l.byName(name); err == nil {
			return l.fromOS(u)
		}
	}
	if uid := l.getenv("PKEXEC_UID"); uid != "" {
		if u, err := l.byID(uid); err == nil {
			return l.fromOS(u)
		}
	}
	if name := l.getenv("USER"); name != "" {
		if u, err := l.byName(name); err == nil {
			return l.fromOS(u)
		}
	}
	u, err := l.current()
	if err != nil {
		return nil, fmt.Errorf("resolve target user: %w", err)
	}
	return l.fromOS(u)
}

func (l lookups) fromOS(u *user.User) (*User, error) {
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("parse uid %q: %w", u.Uid, err)
	}
	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("parse gid %q: %w", u.Gid, err)
	}
	return &User{
		Name:   u.Username,
		UID:    uint32(uid),
		GID:    uint32(gid),
		Home:   u.HomeDir,
		Groups: l.groupIDs(u, uint32(gid)),
	}, nil
}

// groupIDs lists the account's groups. Lookup failures leave only the
// primary group.
func (l lookups) groupIDs(u *user.User, primary uint32) []uint32 {
	out := []uint32{primary}
	if l.groups == nil {
		return out
	}
	ids, err := l.groups(u)
	if err != nil {
		return out
	}
	for _, id := range ids {
		g, err := strconv.ParseUint(id, 10, 32)
		if err != nil || uint32(g) == primary {
			continue
		}
		out = append(out, uint32(g))
	}
	return out
}
