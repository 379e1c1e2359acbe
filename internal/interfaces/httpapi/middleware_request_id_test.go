package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/futsal-stats/internal/platform/id"
)

type fixedGenerator struct {
	id  string
	err error
}

func (g fixedGenerator) NewID() (string, error) { return g.id, g.err }

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		gen      id.Generator
		want     string
	}{
		{name: "keeps caller id", incoming: "abc-123", gen: fixedGenerator{id: "generated"}, want: "abc-123"},
		{name: "replaces malformed id", incoming: "bad id", gen: fixedGenerator{id: "generated"}, want: "generated"},
		{name: "issues when missing", gen: fixedGenerator{id: "generated"}, want: "generated"},
		{name: "generator failure leaves header unset", gen: fixedGenerator{err: errors.New("no entropy")}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				seen = w.Header().Get(requestIDHeader)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
			if tt.incoming != "" {
				req.Header.Set(requestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			RequestID(tt.gen, next).ServeHTTP(rec, req)

			if got := rec.Header().Get(requestIDHeader); got != tt.want {
				t.Fatalf("response header=%q want=%q", got, tt.want)
			}
			if seen != tt.want {
				t.Fatalf("downstream saw %q want=%q", seen, tt.want)
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	if shouldTraceRequest("/healthz") {
		t.Fatalf("health checks must not be traced")
	}
	if !shouldTraceRequest("/v1/standings") {
		t.Fatalf("api routes must be traced")
	}
}
