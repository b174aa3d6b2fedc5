package xslt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolbelt/internal/core/ports"
)

// NodeID is the unique identifier for the stylesheet compiler Graft node.
const NodeID graft.ID = "adapter.template_compiler"

func init() {
	graft.Register(graft.Node[ports.TemplateCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TemplateCompiler, error) {
			return NewCompiler(), nil
		},
	})
}
