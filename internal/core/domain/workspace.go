package domain

import "path/filepath"

// Workspace is the temporary directory owned by a single check run.
type Workspace struct {
	// Dir is the temporary directory holding the snapshots.
	Dir string
	// OriginalDir is the working directory at the time the workspace was created.
	OriginalDir string
}

// SnapshotDir returns the worktree location for a label.
func (w *Workspace) SnapshotDir(label Label) string {
	return filepath.Join(w.Dir, label.String())
}

// BuildDir returns the build directory inside the snapshot for a label.
func (w *Workspace) BuildDir(label Label) string {
	return filepath.Join(w.SnapshotDir(label), BuildDirName)
}
