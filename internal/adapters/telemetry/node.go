package telemetry

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/bytesum/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// NewTracer returns the OpenTelemetry tracer, or a NoOpTracer when OTEL_SDK_DISABLED is "true".
func NewTracer() ports.Tracer {
	if strings.EqualFold(os.Getenv("OTEL_SDK_DISABLED"), "true") {
		return NewNoOpTracer()
	}
	return NewOTelTracer(InstrumentationName)
}

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewTracer(), nil
		},
	})
}
