package ports

import "go.trai.ch/abicheck/internal/core/domain"

// WorkspaceManager owns the temporary directory of a check run.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceManager interface {
	// Create makes a fresh temporary workspace and records the current directory.
	Create() (*domain.Workspace, error)

	// Release restores the recorded working directory and deletes the workspace.
	Release(ws *domain.Workspace) error
}
