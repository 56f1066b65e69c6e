package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
)

const notifyTimeout = 3 * time.Second

// StatusNotifier forwards device loss and finished assignments to the
// desktop notifier. Every status is passed on to next first.
type StatusNotifier struct {
	ctx      context.Context
	notifier port.Notifier
	next     port.StatusObserver

	mu       sync.Mutex
	lastKind entity.StatusKind
	wg       sync.WaitGroup
}

var _ port.StatusObserver = (*StatusNotifier)(nil)

// NewStatusNotifier creates the observer. next may be nil.
func NewStatusNotifier(ctx context.Context, notifier port.Notifier, next port.StatusObserver) *StatusNotifier {
	return &StatusNotifier{ctx: ctx, notifier: notifier, next: next}
}

// StatusChanged implements port.StatusObserver. Notifications are sent on
// their own goroutine; a repeated no_device is not sent twice.
func (s *StatusNotifier) StatusChanged(status entity.Status) {
	if s.next != nil {
		s.next.StatusChanged(status)
	}

	s.mu.Lock()
	repeated := status.Kind == s.lastKind
	s.lastKind = status.Kind
	s.mu.Unlock()

	var summary, body string
	switch status.Kind {
	case entity.StatusNoDevice:
		if repeated {
			return
		}
		summary, body = "Macro pad disconnected", status.Detail
	case entity.StatusCommandAssigned:
		summary = "Command assigned"
		body = strings.TrimSpace(string(status.Key) + " " + status.Detail)
	default:
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer logging.Recover(s.ctx, "status notification")
		ctx, cancel := context.WithTimeout(s.ctx, notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(ctx, summary, body); err != nil {
			logging.FromContext(s.ctx).Debug().Err(err).Str("summary", summary).Msg("notification dropped")
		}
	}()
}

// Wait blocks until pending notifications are done.
func (s *StatusNotifier) Wait() {
	s.wg.Wait()
}
