package xsd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolbelt/internal/core/ports"
)

// NodeID is the unique identifier for the schema compiler Graft node.
const NodeID graft.ID = "adapter.schema_compiler"

func init() {
	graft.Register(graft.Node[ports.SchemaCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemaCompiler, error) {
			return NewCompiler(), nil
		},
	})
}
