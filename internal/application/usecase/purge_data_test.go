package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	portmocks "github.com/bnema/synapse/internal/application/port/mocks"
	"github.com/bnema/synapse/internal/application/usecase"
	"github.com/bnema/synapse/internal/domain/entity"
)

type purgeFixture struct {
	fs  *portmocks.MockFileSystem
	xdg *portmocks.MockXDGPaths
	uc  *usecase.PurgeDataUseCase
}

func newPurgeFixture(t *testing.T) *purgeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &purgeFixture{
		fs:  portmocks.NewMockFileSystem(ctrl),
		xdg: portmocks.NewMockXDGPaths(ctrl),
	}
	f.xdg.EXPECT().ConfigDir().Return("/home/u/.config/synapse", nil).AnyTimes()
	f.xdg.EXPECT().ScriptsDir().Return("/home/u/.local/share/synapse/scripts", nil).AnyTimes()
	f.xdg.EXPECT().DataDir().Return("/home/u/.local/share/synapse", nil).AnyTimes()
	f.xdg.EXPECT().StateDir().Return("/home/u/.local/state/synapse", nil).AnyTimes()
	f.xdg.EXPECT().ManDir().Return("/home/u/.local/share/man/man1", nil).AnyTimes()
	f.fs.EXPECT().Glob(gomock.Any(), "/home/u/.local/share/man/man1/synapse*.1").
		Return([]string{"/home/u/.local/share/man/man1/synapse.1", "/home/u/.local/share/man/man1/synapse-run.1"}, nil).
		AnyTimes()
	f.uc = usecase.NewPurgeDataUseCase(f.fs, f.xdg)
	return f
}

// present marks every path as existing with the given size.
func (f *purgeFixture) present(sizes map[string]int64) {
	f.fs.EXPECT().Exists(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p string) (bool, error) {
			_, ok := sizes[p]
			return ok, nil
		}).AnyTimes()
	f.fs.EXPECT().GetSize(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p string) (int64, error) {
			return sizes[p], nil
		}).AnyTimes()
}

func TestPurgeData_GetPurgeTargets(t *testing.T) {
	f := newPurgeFixture(t)
	f.present(map[string]int64{
		"/home/u/.config/synapse":                     40,
		"/home/u/.local/share/synapse":                900,
		"/home/u/.local/share/man/man1/synapse.1":     10,
		"/home/u/.local/share/man/man1/synapse-run.1": 5,
	})

	targets, err := f.uc.GetPurgeTargets(testContext())
	require.NoError(t, err)
	require.Len(t, targets, 5)

	byType := map[entity.PurgeTargetType]entity.PurgeTarget{}
	for _, tg := range targets {
		byType[tg.Type] = tg
	}
	assert.True(t, byType[entity.PurgeTargetConfig].Exists)
	assert.Equal(t, int64(40), byType[entity.PurgeTargetConfig].Size)
	assert.False(t, byType[entity.PurgeTargetScripts].Exists)
	assert.False(t, byType[entity.PurgeTargetState].Exists)
	assert.Equal(t, int64(15), byType[entity.PurgeTargetManPages].Size)
	assert.Len(t, byType[entity.PurgeTargetManPages].Paths, 2)
}

func TestPurgeData_ExecuteSelected(t *testing.T) {
	f := newPurgeFixture(t)
	f.present(map[string]int64{
		"/home/u/.config/synapse":      40,
		"/home/u/.local/share/synapse": 900,
	})
	f.fs.EXPECT().RemoveAll(gomock.Any(), "/home/u/.config/synapse").Return(nil)

	out, err := f.uc.Execute(testContext(), usecase.PurgeInput{
		TargetTypes: []entity.PurgeTargetType{entity.PurgeTargetConfig, entity.PurgeTargetState},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.SuccessCount)
	assert.Equal(t, int64(40), out.TotalSize)
	require.Len(t, out.Results, 1)
	assert.Equal(t, entity.PurgeTargetConfig, out.Results[0].Target.Type)
}

func TestPurgeData_PurgeAllCollectsFailures(t *testing.T) {
	f := newPurgeFixture(t)
	f.present(map[string]int64{
		"/home/u/.config/synapse":                     40,
		"/home/u/.local/share/synapse/scripts":        12,
		"/home/u/.local/share/synapse":                900,
		"/home/u/.local/share/man/man1/synapse.1":     10,
		"/home/u/.local/share/man/man1/synapse-run.1": 5,
	})
	gomock.InOrder(
		f.fs.EXPECT().RemoveAll(gomock.Any(), "/home/u/.config/synapse").Return(nil),
		f.fs.EXPECT().RemoveAll(gomock.Any(), "/home/u/.local/share/synapse/scripts").Return(errors.New("permission denied")),
		f.fs.EXPECT().RemoveAll(gomock.Any(), "/home/u/.local/share/synapse").Return(nil),
		f.fs.EXPECT().RemoveAll(gomock.Any(), "/home/u/.local/share/man/man1/synapse.1").Return(nil),
		f.fs.EXPECT().RemoveAll(gomock.Any(), "/home/u/.local/share/man/man1/synapse-run.1").Return(nil),
	)

	out, err := f.uc.PurgeAll(testContext())

	require.Error(t, err)
	assert.Equal(t, 3, out.SuccessCount)
	assert.Equal(t, 1, out.FailureCount)
	assert.Equal(t, int64(955), out.TotalSize)
}
