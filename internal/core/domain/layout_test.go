package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/abicheck/internal/core/domain"
)

func TestLayout_DumpPath(t *testing.T) {
	layout := domain.NewLayout("/repo/test/abi/abi-check-result")

	assert.Equal(t,
		filepath.Join("/repo/test/abi/abi-check-result", "vncclient-old.dump"),
		layout.DumpPath("vncclient", domain.LabelOld),
	)
	assert.Equal(t,
		filepath.Join("/repo/test/abi/abi-check-result", "vncserver-new.dump"),
		layout.DumpPath("vncserver", domain.LabelNew),
	)
}

func TestLayout_DumpPath_Deterministic(t *testing.T) {
	a := domain.NewLayout("out")
	b := domain.NewLayout("out/")

	for _, label := range domain.Labels() {
		assert.Equal(t, a.DumpPath("vncclient", label), a.DumpPath("vncclient", label))
		assert.Equal(t, a.DumpPath("vncclient", label), b.DumpPath("vncclient", label))
	}
	assert.NotEqual(t, a.DumpPath("vncclient", domain.LabelOld), a.DumpPath("vncclient", domain.LabelNew))
}

func TestLayout_ReportAndCache(t *testing.T) {
	layout := domain.NewLayout("/out")

	assert.Equal(t, filepath.Join("/out", "vncclient-report.html"), layout.ReportPath("vncclient"))
	assert.Equal(t, filepath.Join("/out", ".cache"), layout.CacheDir())
}

func TestWorkspace_Dirs(t *testing.T) {
	ws := &domain.Workspace{Dir: "/tmp/abi-check-1"}

	assert.Equal(t, filepath.Join("/tmp/abi-check-1", "old"), ws.SnapshotDir(domain.LabelOld))
	assert.Equal(t, filepath.Join("/tmp/abi-check-1", "new", "build"), ws.BuildDir(domain.LabelNew))
}
