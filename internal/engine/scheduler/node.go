package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolbelt/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolbelt/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolbelt/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolbelt/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolbelt/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			spans, err := graft.Dep[*telemetry.SpanListener](ctx)
			if err != nil {
				return nil, err
			}
			return NewScheduler(executor, hasher, Listeners{NewLogListener(log), spans}), nil
		},
	})
}
