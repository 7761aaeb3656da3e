package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated when absent", incoming: ""},
		{name: "kept when supplied", incoming: "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			requestID(next).ServeHTTP(rr, req)

			if seen == "" {
				t.Fatal("expected a request ID in the context")
			}
			if tt.incoming != "" && seen != tt.incoming {
				t.Errorf("expected %q, got %q", tt.incoming, seen)
			}
			if got := rr.Header().Get(RequestIDHeader); got != seen {
				t.Errorf("expected header %q to match context %q", got, seen)
			}
		})
	}
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}

func TestRequestLoggerRecordsRecoveredPanic(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	chain := requestLogger(zap.NewNop())(middleware.Recoverer(panicking))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}
