package stylesheet

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolbelt/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolbelt/internal/adapters/watcher" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolbelt/internal/adapters/xslt"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolbelt/internal/core/ports"
)

const (
	// CacheNodeID is the unique identifier for the stylesheet cache Graft node.
	CacheNodeID graft.ID = "engine.stylesheet_cache"
	// TransformerNodeID is the unique identifier for the transformer Graft node.
	TransformerNodeID graft.ID = "engine.transformer"
	// InvalidatorNodeID is the unique identifier for the cache invalidator Graft node.
	InvalidatorNodeID graft.ID = "engine.stylesheet_invalidator"
)

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{xslt.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
			compiler, err := graft.Dep[ports.TemplateCompiler](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(compiler), nil
		},
	})

	graft.Register(graft.Node[*Transformer]{
		ID:        TransformerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CacheNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Transformer, error) {
			cache, err := graft.Dep[*Cache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTransformer(cache, log), nil
		},
	})

	graft.Register(graft.Node[*Invalidator]{
		ID:        InvalidatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CacheNodeID, watcher.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Invalidator, error) {
			cache, err := graft.Dep[*Cache](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInvalidator(cache, w, log), nil
		},
	})
}
