// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/toolbelt/internal/adapters/cas"
	_ "go.trai.ch/toolbelt/internal/adapters/config"
	_ "go.trai.ch/toolbelt/internal/adapters/fs"
	_ "go.trai.ch/toolbelt/internal/adapters/geodesy"
	_ "go.trai.ch/toolbelt/internal/adapters/logger"
	_ "go.trai.ch/toolbelt/internal/adapters/shell"
	_ "go.trai.ch/toolbelt/internal/adapters/telemetry"
	_ "go.trai.ch/toolbelt/internal/adapters/watcher"
	_ "go.trai.ch/toolbelt/internal/adapters/xsd"
	_ "go.trai.ch/toolbelt/internal/adapters/xslt"
	// Register app and engine nodes.
	_ "go.trai.ch/toolbelt/internal/app"
	_ "go.trai.ch/toolbelt/internal/engine/scheduler"
	_ "go.trai.ch/toolbelt/internal/engine/stylesheet"
)
