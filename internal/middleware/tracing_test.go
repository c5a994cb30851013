package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mlorentedev/wordsmith/internal/telemetry"
)

func setupTracing(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	orig := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(orig) })

	return exp
}

func TestTracingMiddlewareCreatesSpan(t *testing.T) {
	exp := setupTracing(t)

	var traceID string
	handler := Tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = telemetry.TraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/suggest", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(traceID) != 32 {
		t.Errorf("trace id length: got %d, want 32", len(traceID))
	}
	if got := w.Header().Get("traceparent"); !strings.Contains(got, traceID) {
		t.Errorf("traceparent %q should carry trace id %q", got, traceID)
	}

	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans: got %d, want 1", len(spans))
	}
	if spans[0].Name != "HTTP POST /api/suggest" {
		t.Errorf("span name: got %q, want %q", spans[0].Name, "HTTP POST /api/suggest")
	}
	if spans[0].Status.Code == codes.Error {
		t.Error("span should not be marked as error on 200")
	}
}

func TestTracingMiddlewareContinuesIncomingTrace(t *testing.T) {
	setupTracing(t)

	const parent = "4bf92f3577b34da6a3ce929d0e0e4736"
	var traceID string
	handler := Tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = telemetry.TraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("traceparent", "00-"+parent+"-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if traceID != parent {
		t.Errorf("trace id: got %q, want %q", traceID, parent)
	}
}

func TestTracingMiddlewareMarksServerErrors(t *testing.T) {
	exp := setupTracing(t)

	handler := Tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/suggest", nil))

	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans: got %d, want 1", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status: got %v, want %v", spans[0].Status.Code, codes.Error)
	}
}

func TestLoggingIncludesTraceID(t *testing.T) {
	setupTracing(t)

	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(orig) })

	var traceID string
	handler := Tracing(Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = telemetry.TraceID(r.Context())
	})))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/models", nil))

	out := buf.String()
	if !strings.Contains(out, "trace_id="+traceID) {
		t.Errorf("log line missing trace_id: %s", out)
	}
	if !strings.Contains(out, "path=/api/models") {
		t.Errorf("log line missing path: %s", out)
	}
}

func TestChainAppliesStack(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID missing inside chain")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := Chain(inner)

	t.Run("regular request", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		if w.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header not set")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("CORS header not set")
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/suggest", nil))

		if w.Code != http.StatusNoContent {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

func TestStatusWriterKeepsFirstStatus(t *testing.T) {
	w := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	sw.WriteHeader(http.StatusBadRequest)
	sw.WriteHeader(http.StatusInternalServerError)

	if sw.status != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", sw.status, http.StatusBadRequest)
	}
}
