package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abicheck/internal/adapters/shell"
	"go.trai.ch/abicheck/internal/core/ports"
)

// NodeID is the unique identifier for the VCS Graft node.
const NodeID graft.ID = "adapter.vcs"

func init() {
	graft.Register(graft.Node[ports.VCS]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.VCS, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(executor), nil
		},
	})
}
