package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bytesum/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bytesum/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bytesum/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bytesum/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			fs.SummerNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			scanner, err := graft.Dep[ports.FileScanner](ctx)
			if err != nil {
				return nil, err
			}

			summer, err := graft.Dep[ports.Checksummer](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(scanner, summer, tracer, log), nil
		},
	})
}
