package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Open_Firefox", "Open_Firefox"},
		{"Open_Firefox Web Browser", "Open_Firefox_Web_Browser"},
		{"../../etc/passwd", "etcpasswd"},
		{`back\slash`, "backslash"},
		{"  ", "action"},
		{"...", "action"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestAdapter_WriteScript(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scripts")
	writer := New(dir)

	path, err := writer.WriteScript(context.Background(), "Custom 42", []byte("#!/bin/sh\necho hi\n"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Custom_42.sh"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho hi\n", string(data))
}

func TestAdapter_WriteScript_OverwritesAndRestoresMode(t *testing.T) {
	dir := t.TempDir()
	writer := New(dir)
	existing := filepath.Join(dir, "Open_Files.sh")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))

	path, err := writer.WriteScript(context.Background(), "Open_Files", []byte("new"))
	require.NoError(t, err)

	assert.Equal(t, existing, path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
