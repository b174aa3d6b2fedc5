package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolbelt/internal/adapters/logger"
	"go.trai.ch/toolbelt/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[*SpanListener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*SpanListener, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tp := InstallProvider(NewDurationReporter(log))
			return NewSpanListener(tp.Tracer(InstrumentationName)), nil
		},
	})
}
