package exporter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/k2build/internal/adapters/osenv"
	"go.trai.ch/k2build/internal/core/ports"
	"go.trai.ch/zerr"
)

const NodeID graft.ID = "adapter.exporter"

func init() {
	graft.Register(graft.Node[ports.ConfigExporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{osenv.NodeID},
		Run: func(ctx context.Context) (ports.ConfigExporter, error) {
			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			exe, err := os.Executable()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to locate install directory")
			}
			return New(env, filepath.Dir(exe)), nil
		},
	})
}
