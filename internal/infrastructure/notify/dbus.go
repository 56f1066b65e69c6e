// Package notify sends desktop notifications over the freedesktop D-Bus API.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/logging"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"

	appName = "synapse"
	appIcon = "input-keyboard"

	// expireTimeout in milliseconds, -1 lets the server decide.
	expireTimeout int32 = 5000
)

// ErrUnavailable is returned when no session bus could be reached.
var ErrUnavailable = errors.New("notification service unavailable")

// Compile-time interface check.
var _ port.Notifier = (*DBusNotifier)(nil)

// DBusNotifier talks to the notification daemon of one session bus.
// The connection is opened on first use. A failed connect is remembered
// so a headless host does not retry on every status change.
type DBusNotifier struct {
	address string

	mu     sync.Mutex
	conn   *dbus.Conn
	failed bool
}

// New returns a notifier for the bus at address. An empty address means
// the session bus of the current process.
func New(address string) *DBusNotifier {
	return &DBusNotifier{address: address}
}

func (n *DBusNotifier) connect(ctx context.Context) (*dbus.Conn, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil {
		return n.conn, nil
	}
	if n.failed {
		return nil, ErrUnavailable
	}

	var (
		conn *dbus.Conn
		err  error
	)
	if n.address != "" {
		conn, err = dbus.Connect(n.address, dbus.WithContext(ctx))
	} else {
		conn, err = dbus.ConnectSessionBus(dbus.WithContext(ctx))
	}
	if err != nil {
		n.failed = true
		logging.FromContext(ctx).Debug().Err(err).Str("address", n.address).
			Msg("notifier: cannot connect to D-Bus session bus")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	n.conn = conn
	return conn, nil
}

// Notify shows summary and body. Errors are returned but callers are free to drop them.
func (n *DBusNotifier) Notify(ctx context.Context, summary, body string) error {
	conn, err := n.connect(ctx)
	if err != nil {
		return err
	}

	obj := conn.Object(notifyDest, notifyPath)
	call := obj.CallWithContext(ctx, notifyMethod, 0,
		appName,
		uint32(0),
		appIcon,
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		expireTimeout,
	)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("notify: read reply: %w", err)
	}
	logging.FromContext(ctx).Debug().Uint32("id", id).Str("summary", summary).Msg("notification sent")
	return nil
}

// Close drops the bus connection.
func (n *DBusNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn == nil {
		return nil
	}
	err := n.conn.Close()
	n.conn = nil
	return err
}
