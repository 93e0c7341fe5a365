package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/k2build/internal/adapters/config"
	"go.trai.ch/k2build/internal/adapters/exporter"
	"go.trai.ch/k2build/internal/adapters/logger"
	"go.trai.ch/k2build/internal/adapters/shell"
	"go.trai.ch/k2build/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			exporter.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			resolver, err := graft.Dep[ports.ConfigResolver](ctx)
			if err != nil {
				return nil, err
			}
			exp, err := graft.Dep[ports.ConfigExporter](ctx)
			if err != nil {
				return nil, err
			}
			dispatcher, err := graft.Dep[ports.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, exp, dispatcher, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
