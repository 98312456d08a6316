package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abicheck/internal/adapters/fs"
	"go.trai.ch/abicheck/internal/core/ports"
)

// NodeID is the unique identifier for the dump cache Graft node.
const NodeID graft.ID = "adapter.dump_cache"

func init() {
	graft.Register(graft.Node[ports.DumpCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.DumpCache, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(hasher), nil
		},
	})
}
