package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mars/internal/core/ports"
)

// NodeID is the unique identifier for the host inspector Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.HostInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostInspector, error) {
			return NewInspector(), nil
		},
	})
}
