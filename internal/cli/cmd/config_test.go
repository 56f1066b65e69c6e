package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/synapse/internal/domain/entity"
)

func TestUpdateIgnored(t *testing.T) {
	base := entity.Settings{DevicePath: "/dev/input/event3", IgnoredKeys: []entity.EventCode{29, 42}}

	added := updateIgnored(base, []entity.EventCode{99, 29}, false)
	assert.Equal(t, []entity.EventCode{29, 42, 99}, added.IgnoredKeys)
	assert.Equal(t, []entity.EventCode{29, 42}, base.IgnoredKeys, "input must not be modified")

	removed := updateIgnored(base, []entity.EventCode{42, 7}, true)
	assert.Equal(t, []entity.EventCode{29}, removed.IgnoredKeys)
}

func TestUpdateIgnored_RemoveAllKeepsEmptyList(t *testing.T) {
	base := entity.Settings{DevicePath: "/dev/input/event3", IgnoredKeys: []entity.EventCode{29}}

	removed := updateIgnored(base, []entity.EventCode{29}, true)

	assert.NotNil(t, removed.IgnoredKeys)
	assert.Empty(t, removed.IgnoredKeys)
}

func TestDeterminePurgeTypes(t *testing.T) {
	all := entity.AllPurgeTargetTypes()

	assert.Equal(t, all, determinePurgeTypes(PurgeFlags{}))
	assert.Equal(t, all, determinePurgeTypes(PurgeFlags{All: true, Config: true}))
	assert.Equal(t, []entity.PurgeTargetType{entity.PurgeTargetConfig}, determinePurgeTypes(PurgeFlags{Config: true}))
	assert.Equal(t,
		[]entity.PurgeTargetType{entity.PurgeTargetScripts, entity.PurgeTargetData, entity.PurgeTargetManPages},
		determinePurgeTypes(PurgeFlags{Data: true, ManPages: true}))
}

func TestSelectExisting(t *testing.T) {
	targets := []entity.PurgeTarget{
		{Type: entity.PurgeTargetConfig, Exists: true},
		{Type: entity.PurgeTargetState, Exists: false},
		{Type: entity.PurgeTargetManPages, Exists: true},
	}

	got := selectExisting(targets, []entity.PurgeTargetType{entity.PurgeTargetConfig, entity.PurgeTargetState})

	assert.Equal(t, []entity.PurgeTarget{{Type: entity.PurgeTargetConfig, Exists: true}}, got)
}
