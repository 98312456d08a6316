package abitools

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abicheck/internal/adapters/shell"
	"go.trai.ch/abicheck/internal/core/ports"
)

const (
	// DumperNodeID is the unique identifier for the dumper Graft node.
	DumperNodeID graft.ID = "adapter.abi_dumper"
	// ComparatorNodeID is the unique identifier for the comparator Graft node.
	ComparatorNodeID graft.ID = "adapter.abi_comparator"
)

func init() {
	graft.Register(graft.Node[ports.Dumper]{
		ID:        DumperNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Dumper, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewDumper(executor), nil
		},
	})

	graft.Register(graft.Node[ports.Comparator]{
		ID:        ComparatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Comparator, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewComparator(executor), nil
		},
	})
}
