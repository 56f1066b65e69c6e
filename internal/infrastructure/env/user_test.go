package env

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookups(env map[string]string) lookups {
	accounts := map[string]*user.User{
		"root":  {Username: "root", Uid: "0", Gid: "0", HomeDir: "/root"},
		"alice": {Username: "alice", Uid: "1000", Gid: "1000", HomeDir: "/home/alice"},
		"bob":   {Username: "bob", Uid: "1001", Gid: "100", HomeDir: "/home/bob"},
	}
	return lookups{
		getenv: func(k string) string { return env[k] },
		byName: func(name string) (*user.User, error) {
			if u, ok := accounts[name]; ok {
				return u, nil
			}
			return nil, user.UnknownUserError(name)
		},
		byID: func(id string) (*user.User, error) {
			for _, u := range accounts {
				if u.Uid == id {
					return u, nil
				}
			}
			return nil, errors.New("unknown uid")
		},
		current: func() (*user.User, error) { return accounts["root"], nil },
		groups: func(u *user.User) ([]string, error) {
			if u.Username == "alice" {
				return []string{"1000", "29", "44"}, nil
			}
			return nil, errors.New("no group database")
		},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
		uid      uint32
	}{
		{name: "sudo user wins", env: map[string]string{"SUDO_USER": "alice", "USER": "root"}, expected: "alice", uid: 1000},
		{name: "pkexec uid", env: map[string]string{"PKEXEC_UID": "1001", "USER": "root"}, expected: "bob", uid: 1001},
		{name: "sudo root ignored", env: map[string]string{"SUDO_USER": "root", "USER": "alice"}, expected: "alice", uid: 1000},
		{name: "unknown names fall back to current", env: map[string]string{"USER": "nobody-here"}, expected: "root", uid: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := fakeLookups(tt.env).resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.Name)
			assert.Equal(t, tt.uid, u.UID)
		})
	}
}

func TestResolve_BadUID(t *testing.T) {
	l := fakeLookups(map[string]string{})
	l.current = func() (*user.User, error) {
		return &user.User{Username: "x", Uid: "abc", Gid: "0"}, nil
	}

	_, err := l.resolve()
	assert.Error(t, err)
}

func TestResolve_SupplementaryGroups(t *testing.T) {
	alice, err := fakeLookups(map[string]string{"SUDO_USER": "alice"}).resolve()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1000, 29, 44}, alice.Groups)

	bob, err := fakeLookups(map[string]string{"SUDO_USER": "bob"}).resolve()
	require.NoError(t, err)
	assert.Equal(t, []uint32{100}, bob.Groups, "lookup failure keeps the primary group")
}
