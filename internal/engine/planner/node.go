package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mars/internal/adapters/fs"
	"go.trai.ch/mars/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProberNodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}
			return New(prober), nil
		},
	})
}
