package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
)

var (
	usecaseTracer   = otel.Tracer("futsal-stats/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only opens a child span when the caller is already traced.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

// recordTableSizes notes how much of the season survived the filter.
func recordTableSizes(ctx context.Context, season, filtered dataset.Tables) {
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("futsal.season.matches", len(season.Matches)),
		attribute.Int("futsal.season.goals", len(season.Goals)),
		attribute.Int("futsal.filtered.matches", len(filtered.Matches)),
		attribute.Int("futsal.filtered.goals", len(filtered.Goals)),
	)
}
