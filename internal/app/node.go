package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/abicheck/internal/adapters/abitools"           //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/cmake"              //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/git"                //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/revfile"            //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/abicheck/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			git.NodeID,
			cmake.NodeID,
			abitools.DumperNodeID,
			abitools.ComparatorNodeID,
			revfile.NodeID,
			cas.NodeID,
			fs.WorkspaceNodeID,
			shell.ToolCheckerNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	vcs, err := graft.Dep[ports.VCS](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}

	dumper, err := graft.Dep[ports.Dumper](ctx)
	if err != nil {
		return nil, err
	}

	comparator, err := graft.Dep[ports.Comparator](ctx)
	if err != nil {
		return nil, err
	}

	revisions, err := graft.Dep[ports.RevisionStore](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.DumpCache](ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := graft.Dep[ports.WorkspaceManager](ctx)
	if err != nil {
		return nil, err
	}

	tools, err := graft.Dep[ports.ToolChecker](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, vcs, builder, dumper, comparator, revisions, cache, workspaces, tools, telemetry, log), nil
}
