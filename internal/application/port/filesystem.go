package port

import "context"

// ScriptWriter stores generated action scripts.
type ScriptWriter interface {
	// WriteScript writes content under a file derived from name, marks it
	// executable and returns its absolute path.
	WriteScript(ctx context.Context, name string, content []byte) (string, error)
}

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	GetSize(ctx context.Context, path string) (int64, error)
	RemoveAll(ctx context.Context, path string) error
	Glob(ctx context.Context, pattern string) ([]string, error)
}
