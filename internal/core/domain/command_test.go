package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/abicheck/internal/core/domain"
)

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "cmake", domain.Command{Name: "cmake"}.String())
	assert.Equal(t, "cmake --build . --target vncclient",
		domain.Command{Name: "cmake", Args: []string{"--build", ".", "--target", "vncclient"}}.String())
}

func TestCommandError(t *testing.T) {
	cause := errors.New("exit status 2")
	err := &domain.CommandError{Command: domain.Command{Name: "abi-dumper"}, ExitCode: 2, Err: cause}

	assert.Equal(t, "abi-dumper exited with status 2", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWorkspace_Dirs(t *testing.T) {
	ws := &domain.Workspace{Dir: "/tmp/abi-check-1"}

	assert.Equal(t, filepath.Join("/tmp/abi-check-1", "old"), ws.SnapshotDir(domain.LabelOld))
	assert.Equal(t, filepath.Join("/tmp/abi-check-1", "new", domain.BuildDirName), ws.BuildDir(domain.LabelNew))
}

func TestLabels_Order(t *testing.T) {
	assert.Equal(t, []domain.Label{domain.LabelOld, domain.LabelNew}, domain.Labels())
}

func TestCompareTools(t *testing.T) {
	assert.Equal(t, []string{"git", "cmake", "abi-dumper", "abi-compliance-checker"}, domain.CompareTools())
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "INFO", domain.LogLevel(1).String())
}
