package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/abicheck/internal/adapters/fs"
	"go.trai.ch/abicheck/internal/core/domain"
)

func TestWorkspaceManager_CreateRelease(t *testing.T) {
	parent := t.TempDir()
	m := fs.NewWorkspaceManagerIn(parent)

	ws, err := m.Create()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(ws.Dir), domain.WorkspacePrefix))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, ws.OriginalDir)

	require.NoError(t, os.MkdirAll(ws.BuildDir(domain.LabelOld), domain.DirPerm))
	require.NoError(t, m.Release(ws))

	_, err = os.Stat(ws.Dir)
	assert.True(t, os.IsNotExist(err))
}

func TestWorkspaceManager_Release_RestoresWorkingDirectory(t *testing.T) {
	m := fs.NewWorkspaceManagerIn(t.TempDir())
	ws, err := m.Create()
	require.NoError(t, err)

	t.Chdir(ws.Dir)
	require.NoError(t, m.Release(ws))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, ws.OriginalDir, cwd)
}

func TestWorkspaceManager_Create_Fails(t *testing.T) {
	m := fs.NewWorkspaceManagerIn(filepath.Join(t.TempDir(), "does", "not", "exist"))

	_, err := m.Create()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkspaceCreateFailed)
}

func TestWorkspaceManager_Release_Nil(t *testing.T) {
	assert.NoError(t, fs.NewWorkspaceManager().Release(nil))
}
