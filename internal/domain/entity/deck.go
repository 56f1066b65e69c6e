package entity

import "sync"

// Deck owns the binding and action tables for the running process.
// Readers get copies; writers go through the mutators so every change
// is serialized on the same lock.
type Deck struct {
	mu       sync.RWMutex
	layout   Layout
	bindings Bindings
	actions  Actions
}

// NewDeck creates a deck over the given layout and initial tables.
func NewDeck(layout Layout, bindings Bindings, actions Actions) *Deck {
	if bindings == nil {
		bindings = Bindings{}
	}
	if actions == nil {
		actions = Actions{}
	}
	return &Deck{
		layout:   layout,
		bindings: bindings.Clone(),
		actions:  actions.Clone(),
	}
}

// Layout returns the slots of the deck.
func (d *Deck) Layout() Layout {
	return d.layout
}

// Bind assigns a physical key to a slot, replacing any previous code.
func (d *Deck) Bind(key BindingKey, code EventCode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bindings[key] = code
}

// SetAction stores the action for a code, replacing any previous one.
func (d *Deck) SetAction(code EventCode, action Action) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actions[code] = action
}

// Unbind removes the slot binding. It reports whether one existed.
func (d *Deck) Unbind(key BindingKey) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.bindings[key]
	delete(d.bindings, key)
	return ok
}

// ActionFor returns the action bound to code.
func (d *Deck) ActionFor(code EventCode) (Action, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.actions[code]
	return a, ok
}

// CodeFor returns the code bound to a slot.
func (d *Deck) CodeFor(key BindingKey) (EventCode, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.bindings[key]
	return c, ok
}

// Snapshot returns copies of both tables taken under one lock.
func (d *Deck) Snapshot() (Bindings, Actions) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.bindings.Clone(), d.actions.Clone()
}

// Slot is a read model of one deck slot.
type Slot struct {
	Key    BindingKey
	Code   EventCode
	Bound  bool
	Action *Action
}

// Slots resolves every slot of the layout to its code and action.
func (d *Deck) Slots() []Slot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	slots := make([]Slot, 0, len(d.layout))
	for _, key := range d.layout {
		s := Slot{Key: key}
		if code, ok := d.bindings[key]; ok {
			s.Code, s.Bound = code, true
			if a, ok := d.actions[code]; ok {
				action := a
				s.Action = &action
			}
		}
		slots = append(slots, s)
	}
	return slots
}
