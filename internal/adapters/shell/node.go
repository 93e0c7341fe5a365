package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/k2build/internal/adapters/logger"
	"go.trai.ch/k2build/internal/adapters/osenv"
	"go.trai.ch/k2build/internal/core/ports"
)

const NodeID graft.ID = "adapter.dispatcher"

func init() {
	graft.Register(graft.Node[ports.Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{osenv.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Dispatcher, error) {
			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(env, log), nil
		},
	})
}
