package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/synapse/internal/application/port"
)

// Disk implements port.FileSystem using the OS filesystem.
type Disk struct{}

// NewDisk creates a new filesystem adapter.
func NewDisk() *Disk {
	return &Disk{}
}

func (d *Disk) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (d *Disk) GetSize(_ context.Context, path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var size int64
	err = filepath.WalkDir(path, func(_ string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		fi, err := entry.Info()
		if err != nil {
			return err
		}
		size += fi.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return size, nil
}

func (d *Disk) RemoveAll(_ context.Context, path string) error {
	return os.RemoveAll(path)
}

func (d *Disk) Glob(_ context.Context, pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

var _ port.FileSystem = (*Disk)(nil)
