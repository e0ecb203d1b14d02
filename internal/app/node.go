package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mars/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/mars/internal/adapters/host"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mars/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/mars/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/mars/internal/engine/assembler"
	"go.trai.ch/mars/internal/engine/invocation"
	"go.trai.ch/mars/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			host.NodeID,
			planner.NodeID,
			assembler.NodeID,
			invocation.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.HostInspector](ctx)
	if err != nil {
		return nil, err
	}

	targets, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	asm, err := graft.Dep[*assembler.Assembler](ctx)
	if err != nil {
		return nil, err
	}

	invocations, err := graft.Dep[*invocation.Planner](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, inspector, targets, asm, invocations, executor, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
