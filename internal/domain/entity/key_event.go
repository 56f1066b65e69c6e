package entity

import "time"

// KeyEvent is a normalized key press emitted by the device listener.
type KeyEvent struct {
	Code EventCode
	Time time.Time
}
