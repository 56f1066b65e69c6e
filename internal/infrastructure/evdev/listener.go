// Package evdev streams key presses from a Linux input device node.
package evdev

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
	evdev "github.com/holoplot/go-evdev"
)

// keyPressed is the EV_KEY value of a key transition to pressed.
// 0 is release and 2 autorepeat.
const keyPressed = 1

// Device is the part of an evdev handle the listener needs.
type Device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Opener opens the device node at path.
type Opener func(path string) (Device, error)

// OpenDevice opens a real evdev node.
func OpenDevice(path string) (Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// stream is one open handle and the goroutine reading it.
type stream struct {
	path      string
	dev       Device
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

func (s *stream) close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.dev.Close()
	})
	return s.closeErr
}

func (s *stream) finished() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Listener implements port.DeviceListener. At most one stream is live.
type Listener struct {
	open Opener

	// lifecycle serializes Start, Stop and Restart.
	lifecycle sync.Mutex
	current   *stream
}

var _ port.DeviceListener = (*Listener)(nil)

// NewListener creates a listener that opens devices with open.
// A nil opener uses OpenDevice.
func NewListener(open Opener) *Listener {
	if open == nil {
		open = OpenDevice
	}
	return &Listener{open: open}
}

// Start opens settings.DevicePath and streams presses not in settings.IgnoredKeys.
func (l *Listener) Start(ctx context.Context, settings entity.Settings) (<-chan entity.KeyEvent, error) {
	l.lifecycle.Lock()
	defer l.lifecycle.Unlock()
	return l.startLocked(ctx, settings)
}

// Restart stops the running stream, waits for its handle to be released and
// its goroutine to exit, then starts the new one.
func (l *Listener) Restart(ctx context.Context, settings entity.Settings) (<-chan entity.KeyEvent, error) {
	l.lifecycle.Lock()
	defer l.lifecycle.Unlock()

	if err := l.stopLocked(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("closing previous device failed")
	}
	return l.startLocked(ctx, settings)
}

// Stop closes the handle, which unblocks the pending read, and joins the reader.
func (l *Listener) Stop() error {
	l.lifecycle.Lock()
	defer l.lifecycle.Unlock()
	return l.stopLocked()
}

func (l *Listener) startLocked(ctx context.Context, settings entity.Settings) (<-chan entity.KeyEvent, error) {
	if l.current != nil {
		if !l.current.finished() {
			return nil, entity.ErrListenerRunning
		}
		l.current = nil
	}

	ctx = logging.WithDevice(ctx, settings.DevicePath)
	log := logging.FromContext(ctx)

	dev, err := l.open(settings.DevicePath)
	if err != nil {
		log.Warn().Err(err).Msg("input device unavailable")
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrDeviceUnavailable, settings.DevicePath, err)
	}

	s := &stream{
		path: settings.DevicePath,
		dev:  dev,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	events := make(chan entity.KeyEvent)
	l.current = s

	go s.read(ctx, settings.IgnoreSet(), events)

	log.Info().Int("ignored", len(settings.IgnoredKeys)).Msg("listening on input device")
	return events, nil
}

func (l *Listener) stopLocked() error {
	s := l.current
	if s == nil {
		return nil
	}
	l.current = nil

	close(s.stop)
	err := s.close()
	<-s.done
	return err
}

// read runs until the handle is closed or a read fails. Any error ends the
// stream; there is no reopen.
func (s *stream) read(ctx context.Context, ignored map[entity.EventCode]struct{}, events chan<- entity.KeyEvent) {
	log := logging.FromContext(ctx)
	defer close(events)
	defer close(s.done)
	defer func() { _ = s.close() }()

	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			select {
			case <-s.stop:
				log.Debug().Msg("device listener stopped")
			default:
				log.Warn().Err(err).Msg("device read failed, stream ended")
			}
			return
		}

		key, ok := normalize(ev, ignored)
		if !ok {
			continue
		}

		log.Trace().Int("code", int(key.Code)).Msg("key pressed")
		select {
		case events <- key:
		case <-s.stop:
			return
		}
	}
}

// normalize keeps key presses whose code is not ignored.
func normalize(ev *evdev.InputEvent, ignored map[entity.EventCode]struct{}) (entity.KeyEvent, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != keyPressed {
		return entity.KeyEvent{}, false
	}
	code := entity.EventCode(ev.Code)
	if _, skip := ignored[code]; skip {
		return entity.KeyEvent{}, false
	}
	return entity.KeyEvent{Code: code, Time: time.Now()}, true
}
