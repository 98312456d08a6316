package ports

import (
	"context"

	"go.trai.ch/abicheck/internal/core/domain"
)

// VCS wraps the version-control operations a check run needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// TopLevel returns the root of the repository containing dir.
	TopLevel(ctx context.Context, dir string) (string, error)

	// Head returns the commit currently checked out in the repository at root.
	Head(ctx context.Context, root string) (domain.Revision, error)

	// ResolveCommit turns any revision expression into a full commit id.
	ResolveCommit(ctx context.Context, root string, rev domain.Revision) (domain.Revision, error)

	// AddWorktree checks rev out into dir as a linked worktree of root.
	// The caller's working tree is not touched.
	AddWorktree(ctx context.Context, root, dir string, rev domain.Revision) error

	// PruneWorktrees drops registrations of worktrees whose directories are gone.
	PruneWorktrees(ctx context.Context, root string) error
}
