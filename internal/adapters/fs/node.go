package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abicheck/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// WorkspaceNodeID is the unique identifier for the workspace manager Graft node.
	WorkspaceNodeID graft.ID = "adapter.fs.workspace"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.WorkspaceManager]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkspaceManager, error) {
			return NewWorkspaceManager(), nil
		},
	})
}
