package logging

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
)

// Recover logs a panic with its stack and system info, then swallows it.
// It must be deferred directly:
//
//	defer logging.Recover(ctx, "pump")
func Recover(ctx context.Context, where string) {
	if r := recover(); r != nil {
		logPanic(ctx, where, r)
	}
}

// RecoverAndRepanic logs like Recover and panics again. Deferred in main so
// the crash still ends in the log file.
func RecoverAndRepanic(ctx context.Context, where string) {
	if r := recover(); r != nil {
		logPanic(ctx, where, r)
		panic(r)
	}
}

func logPanic(ctx context.Context, where string, r any) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	FromContext(ctx).Error().
		Str("where", where).
		Str("panic", fmt.Sprint(r)).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("goroutines", runtime.NumGoroutine()).
		Uint64("alloc_kb", m.Alloc/1024).
		Bytes("stack", debug.Stack()).
		Msg("recovered panic")
}
