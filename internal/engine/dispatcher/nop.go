package dispatcher

import (
	"context"

	"go.trai.ch/bytesum/internal/core/ports"
)

// The engine may not import adapters outside node.go, so New keeps its own nil fallbacks.
type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End() {}

func (nopSpan) RecordError(error) {}

func (nopSpan) SetAttribute(string, any) {}

type nopLogger struct{}

func (nopLogger) Info(string) {}

func (nopLogger) Warn(string) {}

func (nopLogger) Error(error) {}
