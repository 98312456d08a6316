package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/abicheck/internal/adapters/config"
	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load_Full(t *testing.T) {
	loader, _ := newLoader(t)
	repo := t.TempDir()
	baseDir := filepath.Join(repo, "test", "abi")
	require.NoError(t, os.MkdirAll(baseDir, domain.DirPerm))

	createFile(t, baseDir, domain.SettingsFileName, `
version: "1"
root: ../..
revisionFile: pinned-revision
outputDir: /tmp/abi-out
publicHeaders: include/rfb
cflags: -g -O0
jobs: 8
libraries:
  - name: vncclient
  - name: vncserver
    target: vncserver-shared
    artifact: src/libvncserver.so
`)

	settings, err := loader.Load(baseDir, "")
	require.NoError(t, err)

	assert.Equal(t, repo, settings.Root)
	assert.Equal(t, baseDir, settings.BaseDir)
	assert.Equal(t, filepath.Join(baseDir, "pinned-revision"), settings.RevisionFile)
	assert.Equal(t, "/tmp/abi-out", settings.OutputDir)
	assert.Equal(t, "include/rfb", settings.PublicHeaders)
	assert.Equal(t, "-g -O0", settings.CFlags)
	assert.Equal(t, 8, settings.Jobs)
	assert.Equal(t, []domain.Library{
		{Name: "vncclient"},
		{Name: "vncserver", Target: "vncserver-shared", Artifact: "src/libvncserver.so"},
	}, settings.Libraries)
}

func TestLoader_Load_DiscoversParent(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	createFile(t, root, domain.SettingsFileName, "version: \"1\"\ncflags: -g\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	settings, err := loader.Load(nested, "")
	require.NoError(t, err)
	assert.Equal(t, root, settings.BaseDir)
	assert.Equal(t, "-g", settings.CFlags)
	assert.Empty(t, settings.Root)
}

func TestLoader_Load_NoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	settings, err := loader.Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, &domain.Settings{}, settings)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, "custom.yaml", "libraries:\n  - name: vncclient\n")

	settings, err := loader.Load(dir, "custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, []domain.Library{{Name: "vncclient"}}, settings.Libraries)
}

func TestLoader_Load_ExplicitPathMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(t.TempDir(), "missing.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.SettingsFileName, "libraries: [\n")

	_, err := loader.Load(dir, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_NegativeJobs(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.SettingsFileName, "jobs: -1\n")

	_, err := loader.Load(dir, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "jobs must not be negative")
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	dir := t.TempDir()
	createFile(t, dir, domain.SettingsFileName, "version: \"2\"\n")

	_, err := loader.Load(dir, "")
	require.NoError(t, err)
}
