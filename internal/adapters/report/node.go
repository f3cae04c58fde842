package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bytesum/internal/core/ports"
)

// NodeID is the unique identifier for the report exporter Graft node.
const NodeID graft.ID = "adapter.report_exporter"

func init() {
	graft.Register(graft.Node[ports.ReportExporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportExporter, error) {
			return NewExporter(), nil
		},
	})
}
