package pagination

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attributes returns m as span attributes under the pagination.* namespace.
func (m Metadata) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("pagination.page", m.Page),
		attribute.Int("pagination.limit", m.Limit),
		attribute.Int("pagination.offset", m.Offset),
		attribute.Int("pagination.total", m.Total),
		attribute.Int("pagination.total_pages", m.TotalPages),
		attribute.Bool("pagination.has_next", m.HasNext),
	}
}

// AnnotateSpan records the state of h on the span carried by ctx.
// It does nothing when ctx has no recording span.
func AnnotateSpan(ctx context.Context, h *Helper) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(h.Metadata().Attributes()...)
}
