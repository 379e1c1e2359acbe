package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/usecase"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type filterParams struct {
	Season string   `validate:"omitempty,len=4,numeric"`
	Until  string   `validate:"omitempty,max=10"`
	Month  string   `validate:"omitempty,max=12"`
	Venues []string `validate:"omitempty,max=20,dive,required,max=120"`
	Format string   `validate:"omitempty,oneof=json csv"`
}

func readFilterParams(r *http.Request) filterParams {
	values := r.URL.Query()

	venues := make([]string, 0, len(values["venue"]))
	for _, raw := range values["venue"] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				venues = append(venues, v)
			}
		}
	}

	return filterParams{
		Season: strings.TrimSpace(values.Get("season")),
		Until:  strings.TrimSpace(values.Get("until")),
		Month:  strings.TrimSpace(values.Get("month")),
		Venues: venues,
		Format: strings.ToLower(strings.TrimSpace(values.Get("format"))),
	}
}

// parseQuery validates the shared dashboard filters of a request.
func (h *Handler) parseQuery(ctx context.Context, r *http.Request) (usecase.Query, string, error) {
	params := readFilterParams(r)
	if err := h.validateRequest(ctx, params); err != nil {
		return usecase.Query{}, "", err
	}

	q := usecase.Query{
		Season: params.Season,
		Venues: params.Venues,
		Month:  params.Month,
	}
	if params.Until != "" {
		until, err := parseUntil(params.Until)
		if err != nil {
			return usecase.Query{}, "", err
		}
		q.Until = &until
	}

	format := params.Format
	if format == "" {
		format = formatJSON
	}
	trace.SpanFromContext(ctx).SetAttributes(queryAttributes(q, format)...)
	return q, format, nil
}

// parseUntil accepts the league's dd/mm/yyyy and ISO yyyy-mm-dd.
func parseUntil(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	d, err := calendar.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: until: %v", usecase.ErrInvalidInput, err)
	}
	return d.Time, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
