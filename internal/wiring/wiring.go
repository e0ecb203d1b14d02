// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mars/internal/adapters/config"
	_ "go.trai.ch/mars/internal/adapters/fs"
	_ "go.trai.ch/mars/internal/adapters/host"
	_ "go.trai.ch/mars/internal/adapters/logger"
	_ "go.trai.ch/mars/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/mars/internal/app"
	_ "go.trai.ch/mars/internal/engine/assembler"
	_ "go.trai.ch/mars/internal/engine/invocation"
	_ "go.trai.ch/mars/internal/engine/planner"
)
