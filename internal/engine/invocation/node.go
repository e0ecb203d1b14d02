package invocation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mars/internal/adapters/fs"
	"go.trai.ch/mars/internal/core/ports"
)

// NodeID is the unique identifier for the invocation planner Graft node.
const NodeID graft.ID = "engine.invocation"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ToolchainNodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			toolchain, err := graft.Dep[ports.ToolchainSource](ctx)
			if err != nil {
				return nil, err
			}
			return New(toolchain), nil
		},
	})
}
