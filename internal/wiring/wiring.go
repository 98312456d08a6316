// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/abicheck/internal/adapters/abitools"
	_ "go.trai.ch/abicheck/internal/adapters/cas"
	_ "go.trai.ch/abicheck/internal/adapters/cmake"
	_ "go.trai.ch/abicheck/internal/adapters/config"
	_ "go.trai.ch/abicheck/internal/adapters/fs"
	_ "go.trai.ch/abicheck/internal/adapters/git"
	_ "go.trai.ch/abicheck/internal/adapters/logger"
	_ "go.trai.ch/abicheck/internal/adapters/revfile"
	_ "go.trai.ch/abicheck/internal/adapters/shell"
	_ "go.trai.ch/abicheck/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/abicheck/internal/app"
)
