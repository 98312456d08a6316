package fs

import (
	"os"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceManager = (*WorkspaceManager)(nil)

// WorkspaceManager creates and removes the temporary directory of a run.
type WorkspaceManager struct {
	// tempDir is the parent for new workspaces. Empty means os.TempDir().
	tempDir string
}

// NewWorkspaceManager creates a new WorkspaceManager rooted at the system temp directory.
func NewWorkspaceManager() *WorkspaceManager {
	return &WorkspaceManager{}
}

// NewWorkspaceManagerIn creates a WorkspaceManager that places workspaces under dir.
func NewWorkspaceManagerIn(dir string) *WorkspaceManager {
	return &WorkspaceManager{tempDir: dir}
}

// Create makes a fresh workspace and records the current working directory.
func (m *WorkspaceManager) Create() (*domain.Workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	dir, err := os.MkdirTemp(m.tempDir, domain.WorkspacePrefix)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrWorkspaceCreateFailed, err.Error())
	}

	return &domain.Workspace{Dir: dir, OriginalDir: cwd}, nil
}

// Release returns to the original working directory if it changed and deletes the workspace.
func (m *WorkspaceManager) Release(ws *domain.Workspace) error {
	if ws == nil {
		return nil
	}

	if ws.OriginalDir != "" {
		if cwd, err := os.Getwd(); err != nil || cwd != ws.OriginalDir {
			if err := os.Chdir(ws.OriginalDir); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to restore working directory"), "dir", ws.OriginalDir)
			}
		}
	}

	if err := os.RemoveAll(ws.Dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove workspace"), "dir", ws.Dir)
	}
	return nil
}
