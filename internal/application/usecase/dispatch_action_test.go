package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/synapse/internal/application/port"
	portmocks "github.com/bnema/synapse/internal/application/port/mocks"
	"github.com/bnema/synapse/internal/application/usecase"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatchFixture struct {
	launcher *portmocks.MockProcessLauncher
	scripts  *portmocks.MockScriptWriter
	uc       *usecase.DispatchActionUseCase
}

func newDispatchFixture(t *testing.T, session entity.SessionContext, sessionErr error) *dispatchFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	provider := portmocks.NewMockSessionContextProvider(ctrl)
	provider.EXPECT().SessionContext(gomock.Any()).Return(session, sessionErr).Times(1)

	f := &dispatchFixture{
		launcher: portmocks.NewMockProcessLauncher(ctrl),
		scripts:  portmocks.NewMockScriptWriter(ctrl),
	}
	f.uc = usecase.NewDispatchActionUseCase(testContext(), provider, f.launcher, f.scripts)
	return f
}

func liveSession() entity.SessionContext {
	return entity.SessionContext{
		Source:      entity.SessionSourceLive,
		Home:        "/home/alice",
		Display:     ":1",
		RuntimeDir:  "/run/user/1000",
		DBusAddress: "unix:path=/run/user/1000/bus",
	}
}

func TestDispatchAction_FinalizeWrapsPlainScripts(t *testing.T) {
	f := newDispatchFixture(t, liveSession(), nil)

	var written string
	f.scripts.EXPECT().
		WriteScript(gomock.Any(), "Open_Firefox", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, content []byte) (string, error) {
			written = string(content)
			return "/data/scripts/Open_Firefox.sh", nil
		})

	action, err := f.uc.Finalize(testContext(), 30, "Open_Firefox", "exec firefox")

	require.NoError(t, err)
	assert.Equal(t, entity.Action{Path: "/data/scripts/Open_Firefox.sh"}, action)
	assert.True(t, strings.HasPrefix(written, "#!/bin/bash\n"))
	assert.Contains(t, written, "export DISPLAY=:1\n")
	assert.Contains(t, written, "export HOME=/home/alice\n")
	assert.Contains(t, written, "export XDG_RUNTIME_DIR=/run/user/1000\n")
	assert.Contains(t, written, "export DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/1000/bus\n")
	assert.True(t, strings.HasSuffix(written, "exec firefox\n"))
}

func TestDispatchAction_FinalizeKeepsShebangScripts(t *testing.T) {
	f := newDispatchFixture(t, liveSession(), nil)
	content := "#!/usr/bin/env python3\nprint('hi')\n"

	f.scripts.EXPECT().
		WriteScript(gomock.Any(), "Custom_7", []byte(content)).
		Return("/data/scripts/Custom_7.sh", nil)

	action, err := f.uc.Finalize(testContext(), 7, "", content)

	require.NoError(t, err)
	assert.Equal(t, "/data/scripts/Custom_7.sh", action.Path)
}

func TestDispatchAction_FinalizeRejectsEmptyContent(t *testing.T) {
	f := newDispatchFixture(t, liveSession(), nil)

	_, err := f.uc.Finalize(testContext(), 7, "Custom_7", "  \n\t")

	assert.ErrorIs(t, err, entity.ErrEmptyScript)
}

func TestDispatchAction_FinalizeWriteError(t *testing.T) {
	f := newDispatchFixture(t, liveSession(), nil)
	f.scripts.EXPECT().WriteScript(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("read-only file system"))

	_, err := f.uc.Finalize(testContext(), 7, "Custom_7", "echo hi")

	assert.Error(t, err)
}

func TestDispatchAction_DispatchUsesSessionEnv(t *testing.T) {
	session := liveSession()
	f := newDispatchFixture(t, session, nil)

	f.launcher.EXPECT().
		Launch(gomock.Any(), port.LaunchRequest{Path: "/data/scripts/Open_Files.sh", Env: session.Env()}).
		Return(nil)

	err := f.uc.Dispatch(testContext(), entity.Action{Path: "/data/scripts/Open_Files.sh"})

	assert.NoError(t, err)
	assert.Equal(t, session, f.uc.Session())
}

func TestDispatchAction_LaunchFailureWrapsDispatchFailed(t *testing.T) {
	f := newDispatchFixture(t, liveSession(), nil)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(errors.New("fork/exec /gone.sh: no such file or directory"))

	err := f.uc.Dispatch(testContext(), entity.Action{Path: "/gone.sh"})

	assert.ErrorIs(t, err, entity.ErrDispatchFailed)
	assert.Contains(t, err.Error(), "no such file")
}

func TestDispatchAction_EmptyPath(t *testing.T) {
	f := newDispatchFixture(t, liveSession(), nil)

	err := f.uc.Dispatch(testContext(), entity.Action{})

	assert.ErrorIs(t, err, entity.ErrDispatchFailed)
}

func TestDispatchAction_SessionUnavailable(t *testing.T) {
	f := newDispatchFixture(t, entity.SessionContext{}, entity.ErrSessionUnavailable)

	f.launcher.EXPECT().Launch(gomock.Any(), port.LaunchRequest{Path: "/s.sh", Env: []string{}}).Return(nil)

	require.NoError(t, f.uc.Dispatch(testContext(), entity.Action{Path: "/s.sh"}))
}

func TestActionNaming(t *testing.T) {
	assert.Equal(t, "Open_Firefox", usecase.AppActionName("Firefox"))
	assert.Equal(t, "exec code", usecase.AppActionContent("code"))
	assert.Equal(t, "Custom_42", usecase.CustomActionName(42))
}
