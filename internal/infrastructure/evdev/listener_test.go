package evdev

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeDevice replays queued events, then blocks until closed.
type fakeDevice struct {
	events chan *evdev.InputEvent
	closed chan struct{}
	once   sync.Once
	failAt int
	reads  int
}

func newFakeDevice(events ...*evdev.InputEvent) *fakeDevice {
	d := &fakeDevice{
		events: make(chan *evdev.InputEvent, len(events)),
		closed: make(chan struct{}),
		failAt: -1,
	}
	for _, ev := range events {
		d.events <- ev
	}
	return d
}

func (d *fakeDevice) ReadOne() (*evdev.InputEvent, error) {
	if d.failAt >= 0 && d.reads == d.failAt {
		return nil, io.ErrUnexpectedEOF
	}
	d.reads++
	select {
	case ev := <-d.events:
		return ev, nil
	case <-d.closed:
		return nil, os.ErrClosed
	}
}

func (d *fakeDevice) Close() error {
	d.once.Do(func() { close(d.closed) })
	return nil
}

func (d *fakeDevice) isClosed() bool {
	select {
	case <-d.closed:
		return true
	default:
		return false
	}
}

// fakeOpener hands out registered devices by path.
type fakeOpener struct {
	mu      sync.Mutex
	devices map[string]*fakeDevice
	opened  []*fakeDevice
}

func (o *fakeOpener) open(path string) (Device, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	d, ok := o.devices[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	o.opened = append(o.opened, d)
	return d, nil
}

func (o *fakeOpener) openHandles() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, d := range o.opened {
		if !d.isClosed() {
			n++
		}
	}
	return n
}

func press(code uint16) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.EvCode(code), Value: 1}
}

func receive(t *testing.T, events <-chan entity.KeyEvent) (entity.KeyEvent, bool) {
	t.Helper()
	select {
	case ev, ok := <-events:
		return ev, ok
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return entity.KeyEvent{}, false
	}
}

func TestListener_FiltersIgnoredAndNonPressEvents(t *testing.T) {
	dev := newFakeDevice(
		press(29),
		&evdev.InputEvent{Type: evdev.EV_KEY, Code: 99, Value: 0},
		&evdev.InputEvent{Type: evdev.EV_KEY, Code: 99, Value: 2},
		&evdev.InputEvent{Type: evdev.EV_REL, Code: 8, Value: 1},
		press(99),
	)
	opener := &fakeOpener{devices: map[string]*fakeDevice{"/dev/pad": dev}}
	listener := NewListener(opener.open)
	t.Cleanup(func() { _ = listener.Stop() })

	events, err := listener.Start(testContext(), entity.Settings{
		DevicePath:  "/dev/pad",
		IgnoredKeys: []entity.EventCode{29},
	})
	require.NoError(t, err)

	ev, ok := receive(t, events)
	require.True(t, ok)
	assert.Equal(t, entity.EventCode(99), ev.Code)

	select {
	case extra, ok := <-events:
		if ok {
			t.Fatalf("unexpected extra event %d", extra.Code)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestListener_MissingDevice(t *testing.T) {
	listener := NewListener((&fakeOpener{}).open)

	events, err := listener.Start(testContext(), entity.Settings{DevicePath: "/dev/nope"})

	assert.Nil(t, events)
	assert.True(t, errors.Is(err, entity.ErrDeviceUnavailable))
	assert.NoError(t, listener.Stop())
}

func TestListener_StartTwiceFails(t *testing.T) {
	opener := &fakeOpener{devices: map[string]*fakeDevice{"/dev/pad": newFakeDevice()}}
	listener := NewListener(opener.open)
	t.Cleanup(func() { _ = listener.Stop() })

	_, err := listener.Start(testContext(), entity.Settings{DevicePath: "/dev/pad"})
	require.NoError(t, err)

	_, err = listener.Start(testContext(), entity.Settings{DevicePath: "/dev/pad"})
	assert.ErrorIs(t, err, entity.ErrListenerRunning)
}

func TestListener_RestartReleasesOldHandle(t *testing.T) {
	oldDev, newDev := newFakeDevice(), newFakeDevice(press(5))
	opener := &fakeOpener{devices: map[string]*fakeDevice{"/dev/old": oldDev, "/dev/new": newDev}}
	listener := NewListener(opener.open)
	t.Cleanup(func() { _ = listener.Stop() })

	oldEvents, err := listener.Start(testContext(), entity.Settings{DevicePath: "/dev/old"})
	require.NoError(t, err)
	require.Equal(t, 1, opener.openHandles())

	newEvents, err := listener.Restart(testContext(), entity.Settings{DevicePath: "/dev/new"})
	require.NoError(t, err)

	assert.True(t, oldDev.isClosed())
	assert.Equal(t, 1, opener.openHandles())

	_, ok := receive(t, oldEvents)
	assert.False(t, ok, "old stream must be closed")

	ev, ok := receive(t, newEvents)
	require.True(t, ok)
	assert.Equal(t, entity.EventCode(5), ev.Code)
}

func TestListener_StopUnblocksRead(t *testing.T) {
	dev := newFakeDevice()
	opener := &fakeOpener{devices: map[string]*fakeDevice{"/dev/pad": dev}}
	listener := NewListener(opener.open)

	events, err := listener.Start(testContext(), entity.Settings{DevicePath: "/dev/pad"})
	require.NoError(t, err)

	require.NoError(t, listener.Stop())

	assert.True(t, dev.isClosed())
	_, ok := receive(t, events)
	assert.False(t, ok)
	assert.NoError(t, listener.Stop())
}

func TestListener_StopWithUnconsumedEvent(t *testing.T) {
	dev := newFakeDevice(press(7))
	opener := &fakeOpener{devices: map[string]*fakeDevice{"/dev/pad": dev}}
	listener := NewListener(opener.open)

	_, err := listener.Start(testContext(), entity.Settings{DevicePath: "/dev/pad"})
	require.NoError(t, err)

	// The reader is parked on the unbuffered send; Stop must still return.
	time.Sleep(20 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		_ = listener.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestListener_ReadErrorEndsStream(t *testing.T) {
	dev := newFakeDevice(press(3))
	dev.failAt = 1
	opener := &fakeOpener{devices: map[string]*fakeDevice{"/dev/pad": dev}}
	listener := NewListener(opener.open)

	events, err := listener.Start(testContext(), entity.Settings{DevicePath: "/dev/pad"})
	require.NoError(t, err)

	ev, ok := receive(t, events)
	require.True(t, ok)
	assert.Equal(t, entity.EventCode(3), ev.Code)

	_, ok = receive(t, events)
	assert.False(t, ok)
	assert.True(t, dev.isClosed())

	// A dead stream does not block a fresh start.
	opener.devices["/dev/pad"] = newFakeDevice()
	_, err = listener.Start(testContext(), entity.Settings{DevicePath: "/dev/pad"})
	assert.NoError(t, err)
	assert.NoError(t, listener.Stop())
}

func TestByIDLinks(t *testing.T) {
	dir := t.TempDir()
	node := filepath.Join(dir, "event3")
	require.NoError(t, os.WriteFile(node, nil, 0o600))
	byID := filepath.Join(dir, "by-id")
	require.NoError(t, os.Mkdir(byID, 0o755))
	require.NoError(t, os.Symlink(node, filepath.Join(byID, "usb-pad-event-kbd")))

	links := byIDLinks(byID)

	resolved, err := filepath.EvalSymlinks(node)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(byID, "usb-pad-event-kbd")}, links[resolved])
}
