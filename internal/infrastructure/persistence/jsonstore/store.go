// Package jsonstore persists the binding and action tables as flat JSON documents.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/domain/repository"
	"github.com/bnema/synapse/internal/logging"
)

const (
	BindingsFile = "bindings.json"
	ActionsFile  = "actions.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Store implements repository.BindingRepository over bindings.json and actions.json.
type Store struct {
	dir string
	mu  sync.Mutex
}

var _ repository.BindingRepository = (*Store)(nil)

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads both documents. Missing or corrupt documents yield empty tables;
// corruption is logged and not returned.
func (s *Store) Load(ctx context.Context) (entity.Bindings, entity.Actions, error) {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	bindings := entity.Bindings{}
	var rawBindings map[string]entity.EventCode
	if err := s.readDocument(BindingsFile, &rawBindings); err != nil {
		log.Warn().Err(err).Str("file", BindingsFile).Msg("bindings unreadable, starting empty")
		rawBindings = nil
	}
	for key, code := range rawBindings {
		if code < 0 {
			log.Warn().Str("key", key).Int("code", int(code)).Msg("skipping binding with negative code")
			continue
		}
		bindings[entity.BindingKey(key)] = code
	}

	actions := entity.Actions{}
	var rawActions map[string]string
	if err := s.readDocument(ActionsFile, &rawActions); err != nil {
		log.Warn().Err(err).Str("file", ActionsFile).Msg("actions unreadable, starting empty")
		rawActions = nil
	}
	for rawCode, path := range rawActions {
		code, err := entity.ParseEventCode(rawCode)
		if err != nil {
			log.Warn().Err(err).Msg("skipping action with invalid code")
			continue
		}
		if path == "" {
			continue
		}
		actions[code] = entity.Action{Path: path}
	}

	log.Debug().
		Int("bindings", len(bindings)).
		Int("actions", len(actions)).
		Str("dir", s.dir).
		Msg("binding tables loaded")
	return bindings, actions, nil
}

// readDocument decodes name into v. A missing file is not an error.
func (s *Store) readDocument(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", entity.ErrConfigCorrupt, name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", entity.ErrConfigCorrupt, name, err)
	}
	return nil
}

// Save writes both tables.
func (s *Store) Save(ctx context.Context, bindings entity.Bindings, actions entity.Actions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	rawBindings := make(map[string]entity.EventCode, len(bindings))
	for key, code := range bindings {
		rawBindings[string(key)] = code
	}
	rawActions := make(map[string]string, len(actions))
	for code, action := range actions {
		rawActions[code.String()] = action.Path
	}

	if err := s.writeDocument(BindingsFile, rawBindings); err != nil {
		return err
	}
	if err := s.writeDocument(ActionsFile, rawActions); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Int("bindings", len(bindings)).
		Int("actions", len(actions)).
		Msg("binding tables saved")
	return nil
}

// writeDocument replaces name atomically via a temp file in the same directory.
func (s *Store) writeDocument(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
