package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/toolbelt/internal/adapters/fs"
)

// NodeID is the unique identifier for the build info store opener.
const NodeID graft.ID = "adapter.build_info_store"

func init() {
	graft.Register(graft.Node[*Opener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*Opener, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(fsys), nil
		},
	})
}
