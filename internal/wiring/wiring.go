// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bytesum/internal/adapters/config"
	_ "go.trai.ch/bytesum/internal/adapters/fs"
	_ "go.trai.ch/bytesum/internal/adapters/logger"
	_ "go.trai.ch/bytesum/internal/adapters/report"
	_ "go.trai.ch/bytesum/internal/adapters/telemetry"
	_ "go.trai.ch/bytesum/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/bytesum/internal/app"
	_ "go.trai.ch/bytesum/internal/engine/dispatcher"
)
