package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bytesum/internal/core/ports"
)

// NodeID is the unique identifier for the progress journal node.
const NodeID graft.ID = "adapter.telemetry.progrock"

func init() {
	graft.Register(graft.Node[ports.JournalOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.JournalOpener, error) {
			return Opener{}, nil
		},
	})
}
