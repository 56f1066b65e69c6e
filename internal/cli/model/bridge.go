package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
)

const (
	statusBuffer  = 16
	captureBuffer = 4
)

// statusMsg carries a controller status into the Bubble Tea loop.
type statusMsg entity.Status

// captureMsg reports a freshly learned binding.
type captureMsg struct {
	key  entity.BindingKey
	code entity.EventCode
}

// Bridge moves controller notifications onto the Bubble Tea loop. The
// controller calls it from the event goroutine; sends never block, so a
// stalled UI cannot hold up key handling.
type Bridge struct {
	status   chan entity.Status
	captures chan captureMsg
}

var (
	_ port.StatusObserver = (*Bridge)(nil)
	_ port.CaptureHandler = (*Bridge)(nil)
)

// NewBridge creates a bridge with small buffers.
func NewBridge() *Bridge {
	return &Bridge{
		status:   make(chan entity.Status, statusBuffer),
		captures: make(chan captureMsg, captureBuffer),
	}
}

// StatusChanged implements port.StatusObserver. When the buffer is full the
// update is dropped; the deck re-reads the controller status on the next one.
func (b *Bridge) StatusChanged(s entity.Status) {
	select {
	case b.status <- s:
	default:
	}
}

// BindingCaptured implements port.CaptureHandler. When the buffer is full the
// oldest pending capture is discarded so the newest one still opens a picker.
func (b *Bridge) BindingCaptured(ctx context.Context, key entity.BindingKey, code entity.EventCode) {
	msg := captureMsg{key: key, code: code}
	for {
		select {
		case b.captures <- msg:
			return
		default:
		}
		select {
		case old := <-b.captures:
			logging.FromContext(ctx).Debug().
				Str("key", string(old.key)).
				Int("code", int(old.code)).
				Msg("capture dropped, picker backlog full")
		default:
		}
	}
}

func (b *Bridge) waitStatus() tea.Cmd {
	return func() tea.Msg {
		return statusMsg(<-b.status)
	}
}

func (b *Bridge) waitCapture() tea.Cmd {
	return func() tea.Msg {
		return <-b.captures
	}
}
