package entity

import "fmt"

// StatusKind enumerates the states the deck reports to observers.
type StatusKind string

const (
	StatusIdle            StatusKind = "idle"
	StatusWaitingForInput StatusKind = "waiting_for_input"
	StatusCommandAssigned StatusKind = "command_assigned"
	StatusNoDevice        StatusKind = "no_device"
	StatusLearnCancelled  StatusKind = "learn_cancelled"
)

// Status is the single current-state notification exposed by the controller.
type Status struct {
	Kind   StatusKind
	Key    BindingKey
	Code   EventCode
	Detail string
}

// IdleStatus is the initial status.
func IdleStatus() Status {
	return Status{Kind: StatusIdle}
}

// String renders the status line shown by the deck.
func (s Status) String() string {
	switch s.Kind {
	case StatusWaitingForInput:
		return fmt.Sprintf("WAITING FOR INPUT: %s", s.Key)
	case StatusCommandAssigned:
		return "COMMAND ASSIGNED"
	case StatusNoDevice:
		if s.Detail != "" {
			return "NO DEVICE: " + s.Detail
		}
		return "NO DEVICE"
	case StatusLearnCancelled:
		return "LEARNING CANCELLED"
	default:
		return "SYSTEM OPERATIONAL"
	}
}
