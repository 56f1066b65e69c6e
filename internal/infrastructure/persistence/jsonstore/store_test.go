package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestStore_LoadMissingFiles(t *testing.T) {
	store := New(t.TempDir())

	bindings, actions, err := store.Load(testContext())

	require.NoError(t, err)
	assert.Empty(t, bindings)
	assert.Empty(t, actions)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	store := New(dir)

	bindings := entity.Bindings{"K1": 30, "K5": 42, "R1_PRESS": 115}
	actions := entity.Actions{
		30: {Path: "/scripts/Open_Firefox.sh"},
		99: {Path: "/scripts/Custom_99.sh"},
	}

	require.NoError(t, store.Save(ctx, bindings, actions))

	gotBindings, gotActions, err := New(dir).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, bindings, gotBindings)
	assert.Equal(t, actions, gotActions)
}

func TestStore_DocumentFormat(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, store.Save(ctx,
		entity.Bindings{"K5": 42},
		entity.Actions{42: {Path: "/tmp/x.sh"}},
	))

	var rawBindings map[string]int
	data, err := os.ReadFile(filepath.Join(dir, BindingsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &rawBindings))
	assert.Equal(t, map[string]int{"K5": 42}, rawBindings)

	var rawActions map[string]string
	data, err = os.ReadFile(filepath.Join(dir, ActionsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &rawActions))
	assert.Equal(t, map[string]string{"42": "/tmp/x.sh"}, rawActions)
}

func TestStore_CorruptDocumentsYieldEmptyTables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BindingsFile), []byte("{{{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ActionsFile), []byte(`{"42": "/ok.sh", "x": "/bad.sh"}`), 0o644))

	bindings, actions, err := New(dir).Load(testContext())

	require.NoError(t, err)
	assert.Empty(t, bindings)
	assert.Equal(t, entity.Actions{42: {Path: "/ok.sh"}}, actions)
}

func TestStore_MistypedValuesDiscardWholeDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BindingsFile), []byte(`{"K1": 5, "K2": "oops"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ActionsFile), []byte(`{"5": "/a.sh", "6": 7}`), 0o644))

	bindings, actions, err := New(dir).Load(testContext())

	require.NoError(t, err)
	assert.Empty(t, bindings)
	assert.Empty(t, actions)
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	require.NoError(t, New(dir).Save(testContext(), entity.Bindings{}, entity.Actions{}))

	assert.FileExists(t, filepath.Join(dir, BindingsFile))
	assert.FileExists(t, filepath.Join(dir, ActionsFile))
}
