package entity_test

import (
	"testing"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	layout := entity.DefaultLayout()

	require.Len(t, layout, 14)
	assert.Equal(t, entity.BindingKey("K1"), layout[0])
	assert.Equal(t, entity.BindingKey("K12"), layout[11])
	assert.True(t, layout.Contains("R1_PRESS"))
	assert.True(t, layout.Contains("R2_PRESS"))
	assert.False(t, layout.Contains("K13"))
}

func TestDeck_SnapshotIsIndependent(t *testing.T) {
	deck := entity.NewDeck(entity.DefaultLayout(), entity.Bindings{"K1": 30}, nil)

	bindings, actions := deck.Snapshot()
	bindings["K2"] = 31
	actions[31] = entity.Action{Path: "/tmp/x.sh"}

	_, ok := deck.CodeFor("K2")
	assert.False(t, ok)
	_, ok = deck.ActionFor(31)
	assert.False(t, ok)
}

func TestDeck_DuplicateCodesAllowed(t *testing.T) {
	deck := entity.NewDeck(entity.DefaultLayout(), nil, nil)

	deck.Bind("K1", 42)
	deck.Bind("K2", 42)

	c1, _ := deck.CodeFor("K1")
	c2, _ := deck.CodeFor("K2")
	assert.Equal(t, c1, c2)
}

func TestDeck_Slots(t *testing.T) {
	deck := entity.NewDeck(
		entity.DefaultLayout(),
		entity.Bindings{"K1": 30, "K2": 31},
		entity.Actions{30: {Path: "/scripts/Open_Firefox.sh"}},
	)

	slots := deck.Slots()
	require.Len(t, slots, 14)

	assert.True(t, slots[0].Bound)
	require.NotNil(t, slots[0].Action)
	assert.Equal(t, "/scripts/Open_Firefox.sh", slots[0].Action.Path)

	assert.True(t, slots[1].Bound)
	assert.Nil(t, slots[1].Action)

	assert.False(t, slots[2].Bound)
}

func TestDeck_Unbind(t *testing.T) {
	deck := entity.NewDeck(entity.DefaultLayout(), entity.Bindings{"K3": 5}, nil)

	assert.True(t, deck.Unbind("K3"))
	assert.False(t, deck.Unbind("K3"))
}

func TestParseEventCode(t *testing.T) {
	code, err := entity.ParseEventCode("42")
	require.NoError(t, err)
	assert.Equal(t, entity.EventCode(42), code)
	assert.Equal(t, "42", code.String())

	_, err = entity.ParseEventCode("abc")
	assert.Error(t, err)
	_, err = entity.ParseEventCode("-1")
	assert.Error(t, err)
}
