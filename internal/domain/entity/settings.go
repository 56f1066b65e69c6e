package entity

import "sort"

// DefaultDevicePath is the macro-pad the deck was built around.
const DefaultDevicePath = "/dev/input/by-id/usb-1189_USB_Composite_Device_CD70134330383838-if01-event-kbd"

// Settings is the user-editable device configuration.
type Settings struct {
	DevicePath  string      `json:"device_path" mapstructure:"device_path" jsonschema:"description=Path of the evdev node to listen on"`
	IgnoredKeys []EventCode `json:"ignored_keys" mapstructure:"ignored_keys" jsonschema:"description=Key codes never treated as macro triggers"`
}

// DefaultSettings returns the built-in configuration.
// The ignored keys are the modifiers the pad firmware emits alongside its own codes:
// left ctrl, left shift, left alt, right alt and left meta.
func DefaultSettings() Settings {
	return Settings{
		DevicePath:  DefaultDevicePath,
		IgnoredKeys: []EventCode{29, 42, 56, 100, 125},
	}
}

// IgnoreSet returns the ignored keys as a lookup set.
func (s Settings) IgnoreSet() map[EventCode]struct{} {
	set := make(map[EventCode]struct{}, len(s.IgnoredKeys))
	for _, c := range s.IgnoredKeys {
		set[c] = struct{}{}
	}
	return set
}

// Normalize fills missing fields from defaults and deduplicates the ignore list.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if s.DevicePath == "" {
		s.DevicePath = def.DevicePath
	}
	if s.IgnoredKeys == nil {
		s.IgnoredKeys = def.IgnoredKeys
	}
	seen := make(map[EventCode]struct{}, len(s.IgnoredKeys))
	keys := make([]EventCode, 0, len(s.IgnoredKeys))
	for _, c := range s.IgnoredKeys {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	s.IgnoredKeys = keys
	return s
}

// Equal reports whether two settings describe the same listener configuration.
func (s Settings) Equal(o Settings) bool {
	a, b := s.Normalize(), o.Normalize()
	if a.DevicePath != b.DevicePath || len(a.IgnoredKeys) != len(b.IgnoredKeys) {
		return false
	}
	for i := range a.IgnoredKeys {
		if a.IgnoredKeys[i] != b.IgnoredKeys[i] {
			return false
		}
	}
	return true
}
