package entity

import (
	"fmt"
	"sort"
	"strconv"
)

// BindingKey identifies a logical slot on the deck (grid button or rotary push).
type BindingKey string

// EventCode is the key code reported by the kernel input subsystem.
type EventCode int

// String renders the code the way it is keyed in the actions document.
func (c EventCode) String() string {
	return strconv.Itoa(int(c))
}

// ParseEventCode parses a string-encoded event code.
func ParseEventCode(s string) (EventCode, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse event code %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parse event code %q: negative", s)
	}
	return EventCode(n), nil
}

// Action is an executable script bound to an event code.
type Action struct {
	Path string
}

// Bindings maps deck slots to the physical key that triggers them.
type Bindings map[BindingKey]EventCode

// Actions maps physical keys to the script they run.
type Actions map[EventCode]Action

// Clone returns an independent copy.
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy.
func (a Actions) Clone() Actions {
	out := make(Actions, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Grid dimensions of the reference deck layout.
const (
	GridRows = 3
	GridCols = 4
)

// Layout is the fixed, ordered set of slots a deck exposes.
type Layout []BindingKey

// DefaultLayout returns the reference layout: K1..K12 followed by the two rotary pushes.
func DefaultLayout() Layout {
	keys := make(Layout, 0, GridRows*GridCols+2)
	for i := 1; i <= GridRows*GridCols; i++ {
		keys = append(keys, BindingKey(fmt.Sprintf("K%d", i)))
	}
	return append(keys, "R1_PRESS", "R2_PRESS")
}

// Contains reports whether key belongs to the layout.
func (l Layout) Contains(key BindingKey) bool {
	for _, k := range l {
		if k == key {
			return true
		}
	}
	return false
}

// SortedCodes returns the action codes in ascending order.
func (a Actions) SortedCodes() []EventCode {
	codes := make([]EventCode, 0, len(a))
	for c := range a {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
