package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bytesum/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bytesum/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/bytesum/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bytesum/internal/adapters/report"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bytesum/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/bytesum/internal/core/ports"
	"go.trai.ch/bytesum/internal/engine/dispatcher"
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
			dispatcher.NodeID,
			fs.SummerNodeID,
			report.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	disp, err := graft.Dep[*dispatcher.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}

	summer, err := graft.Dep[ports.Checksummer](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.ReportExporter](ctx)
	if err != nil {
		return nil, err
	}

	journals, err := graft.Dep[ports.JournalOpener](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, disp, summer, exporter, journals, log), nil
}
