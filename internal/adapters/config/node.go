package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/k2build/internal/adapters/osenv"
	"go.trai.ch/k2build/internal/core/ports"
)

const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{osenv.NodeID},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(env), nil
		},
	})
}
