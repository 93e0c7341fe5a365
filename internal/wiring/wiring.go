// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/k2build/internal/adapters/config"
	_ "go.trai.ch/k2build/internal/adapters/exporter"
	_ "go.trai.ch/k2build/internal/adapters/logger"
	_ "go.trai.ch/k2build/internal/adapters/osenv"
	_ "go.trai.ch/k2build/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/k2build/internal/app"
)
