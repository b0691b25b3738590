package console

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var consoleTracer = otel.Tracer("player-roster/internal/interfaces/console")
var noopSpan = trace.SpanFromContext(context.Background())

// startOperationSpan opens the root span for a menu action; spans opened
// further down attach to it when a tracing provider is installed.
func startOperationSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return consoleTracer.Start(ctx, name)
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// No parent span in context: avoid creating standalone root spans
		// for internal helpers.
		return ctx, noopSpan
	}
	return consoleTracer.Start(ctx, name)
}
