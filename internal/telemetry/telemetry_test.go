package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTraceIDWithoutSpan(t *testing.T) {
	if got := TraceID(context.Background()); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestInitExportsSpans(t *testing.T) {
	orig := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(orig) })

	exp := tracetest.NewInMemoryExporter()
	shutdown, err := Init(context.Background(), "wordsmith-test", "v0", exp)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	ctx, span := StartSpan(context.Background(), "unit")
	id := TraceID(ctx)
	span.End()

	if len(id) != 32 {
		t.Errorf("trace id length: got %d, want 32", len(id))
	}

	tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	if !ok {
		t.Fatal("Init did not install an SDK tracer provider")
	}
	if err := tp.ForceFlush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}

	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans: got %d, want 1", len(spans))
	}
	if spans[0].Name != "unit" {
		t.Errorf("span name: got %q, want %q", spans[0].Name, "unit")
	}


	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	if service != "wordsmith-test" {
		t.Errorf("service.name: got %q, want %q", service, "wordsmith-test")
	}

	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
