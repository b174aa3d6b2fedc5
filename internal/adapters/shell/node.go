package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolbelt/internal/adapters/logger"
	"go.trai.ch/toolbelt/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// StarterNodeID is the unique identifier for the process starter Graft node.
	StarterNodeID graft.ID = "adapter.process_starter"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessStarter]{
		ID:        StarterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessStarter, error) {
			return NewStarter(), nil
		},
	})
}
