package osenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/k2build/internal/core/ports"
)

const NodeID graft.ID = "adapter.environment"

func init() {
	graft.Register(graft.Node[ports.Environment]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Environment, error) {
			return New(), nil
		},
	})
}
