package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/toolbelt/internal/core/ports"
)

const (
	// NodeID provides the host file system.
	NodeID         graft.ID = "adapter.fs"
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	CopierNodeID   graft.ID = "adapter.fs.copier"
)

func init() {
	graft.Register(graft.Node[afero.Fs]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*Walker, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(fs), nil
		},
	})

	graft.Register(graft.Node[*Resolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fs), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, WalkerNodeID, ResolverNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*Resolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(fs, walker, resolver), nil
		},
	})

	graft.Register(graft.Node[*Copier]{
		ID:        CopierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*Copier, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewCopier(fs), nil
		},
	})
}
