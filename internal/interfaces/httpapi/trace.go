package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/futsal-stats/internal/usecase"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("futsal-stats/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startSpan opens handler spans only, and only under a traced request.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !shouldCreateHTTPAPISpan(name) || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix) && len(name) > len(handlerSpanPrefix)
}

// queryAttributes describes the dashboard filters on the active span.
func queryAttributes(q usecase.Query, format string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("futsal.filter.season", q.Season),
		attribute.String("futsal.filter.month", q.Month),
		attribute.StringSlice("futsal.filter.venues", q.Venues),
		attribute.String("futsal.response.format", format),
	}
	if q.Until != nil {
		attrs = append(attrs, attribute.String("futsal.filter.until", q.Until.Format("2006-01-02")))
	}
	return attrs
}
