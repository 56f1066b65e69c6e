package entity

import "time"

// ActivityKind classifies entries of the activity log.
type ActivityKind string

const (
	ActivityLearned        ActivityKind = "learned"
	ActivityDispatched     ActivityKind = "dispatched"
	ActivityDispatchFailed ActivityKind = "dispatch_failed"
	ActivityAssigned       ActivityKind = "assigned"
)

// Activity is one entry of the activity log.
type Activity struct {
	ID         int64
	Kind       ActivityKind
	BindingKey BindingKey
	EventCode  EventCode
	ActionPath string
	Error      string
	CreatedAt  time.Time
}

// NewActivity creates an entry stamped with the current time.
func NewActivity(kind ActivityKind, code EventCode) *Activity {
	return &Activity{
		Kind:      kind,
		EventCode: code,
		CreatedAt: time.Now(),
	}
}
