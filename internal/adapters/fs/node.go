package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mars/internal/core/ports"
)

const (
	ProberNodeID    graft.ID = "adapter.fs.prober"
	ToolchainNodeID graft.ID = "adapter.fs.toolchain"
)

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prober, error) {
			return NewProber(), nil
		},
	})

	graft.Register(graft.Node[ports.ToolchainSource]{
		ID:        ToolchainNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolchainSource, error) {
			return NewToolchainFile(), nil
		},
	})
}
