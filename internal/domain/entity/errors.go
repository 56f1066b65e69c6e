package entity

import "errors"

var (
	// ErrDeviceUnavailable is returned when the configured input device cannot be opened.
	ErrDeviceUnavailable = errors.New("input device unavailable")

	// ErrDeviceDisconnected marks a stream that ended because reading the device failed.
	ErrDeviceDisconnected = errors.New("input device disconnected")

	// ErrConfigCorrupt marks a persisted document that exists but cannot be decoded.
	ErrConfigCorrupt = errors.New("persisted document is corrupt")

	// ErrDispatchFailed wraps every failure to launch a bound action.
	ErrDispatchFailed = errors.New("action dispatch failed")

	// ErrUnknownBindingKey is returned for slot ids that are not part of the deck layout.
	ErrUnknownBindingKey = errors.New("unknown binding key")

	// ErrNotLearning is returned when cancelling while no learning session is active.
	ErrNotLearning = errors.New("no learning session active")

	// ErrListenerRunning is returned by Start when a listener is already active.
	ErrListenerRunning = errors.New("device listener already running")

	// ErrSessionUnavailable is returned when no desktop session of the target user is found.
	ErrSessionUnavailable = errors.New("desktop session unavailable")

	// ErrInvalidSettings is returned when saving settings that cannot describe a device.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrEmptyScript is returned when finalizing an action without content.
	ErrEmptyScript = errors.New("script content is empty")
)
