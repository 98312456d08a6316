package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abicheck/internal/adapters/shell"
	"go.trai.ch/abicheck/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "adapter.builder"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(executor), nil
		},
	})
}
