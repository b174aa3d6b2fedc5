package geodesy

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the projector Graft node.
const NodeID graft.ID = "adapter.projector"

func init() {
	graft.Register(graft.Node[*Projector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Projector, error) {
			return NewProjector(), nil
		},
	})
}
