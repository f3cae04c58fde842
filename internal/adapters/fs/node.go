package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bytesum/internal/adapters/logger"
	"go.trai.ch/bytesum/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the directory scanner Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// SummerNodeID is the unique identifier for the checksum engine Graft node.
	SummerNodeID graft.ID = "adapter.fs.summer"
)

func init() {
	graft.Register(graft.Node[ports.FileScanner]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FileScanner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(log), nil
		},
	})

	graft.Register(graft.Node[ports.Checksummer]{
		ID:        SummerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Checksummer, error) {
			return NewSummer(), nil
		},
	})
}
