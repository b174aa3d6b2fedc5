package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolbelt/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/toolbelt/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/toolbelt/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/toolbelt/internal/adapters/geodesy" //nolint:depguard // Wired in app layer
	"go.trai.ch/toolbelt/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/toolbelt/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/toolbelt/internal/adapters/xsd"     //nolint:depguard // Wired in app layer
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/toolbelt/internal/engine/scheduler"
	"go.trai.ch/toolbelt/internal/engine/stylesheet"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer
// needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			stylesheet.TransformerNodeID,
			stylesheet.InvalidatorNodeID,
			xsd.NodeID,
			shell.StarterNodeID,
			scheduler.NodeID,
			cas.NodeID,
			fs.CopierNodeID,
			geodesy.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)
	if deps.Loader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Transformer, err = graft.Dep[*stylesheet.Transformer](ctx); err != nil {
		return nil, err
	}
	if deps.Invalidator, err = graft.Dep[*stylesheet.Invalidator](ctx); err != nil {
		return nil, err
	}
	if deps.Schemas, err = graft.Dep[ports.SchemaCompiler](ctx); err != nil {
		return nil, err
	}
	if deps.Starter, err = graft.Dep[ports.ProcessStarter](ctx); err != nil {
		return nil, err
	}
	if deps.Scheduler, err = graft.Dep[*scheduler.Scheduler](ctx); err != nil {
		return nil, err
	}
	if deps.Stores, err = graft.Dep[*cas.Opener](ctx); err != nil {
		return nil, err
	}
	if deps.Copier, err = graft.Dep[*fs.Copier](ctx); err != nil {
		return nil, err
	}
	if deps.Projector, err = graft.Dep[*geodesy.Projector](ctx); err != nil {
		return nil, err
	}
	return New(deps), nil
}
