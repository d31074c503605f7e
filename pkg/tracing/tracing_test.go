package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// 使用内存SpanRecorder，不依赖外部Collector
func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return recorder
}

func TestStartSpan_ChildSharesTraceID(t *testing.T) {
	recorder := setupRecorder(t)

	ctx, root := StartSpan(context.Background(), "test", "RootOperation")
	rootTraceID := ExtractTraceID(ctx)
	rootSpanID := ExtractSpanID(ctx)

	childCtx, child := StartSpan(ctx, "test", "ChildOperation")
	child.End()
	root.End()

	if rootTraceID == "" {
		t.Fatal("根Span的TraceID为空")
	}
	if ExtractTraceID(childCtx) != rootTraceID {
		t.Errorf("子Span的TraceID不匹配: root=%s, child=%s", rootTraceID, ExtractTraceID(childCtx))
	}
	if ExtractSpanID(childCtx) == rootSpanID {
		t.Error("子Span的SpanID不应与根Span相同")
	}

	if ended := recorder.Ended(); len(ended) != 2 {
		t.Errorf("期望记录2个Span，实际%d个", len(ended))
	}
}

func TestExtractTraceID_NoSpan(t *testing.T) {
	if id := ExtractTraceID(context.Background()); id != "" {
		t.Errorf("无Span时期望空TraceID，实际%s", id)
	}
	if id := ExtractSpanID(context.Background()); id != "" {
		t.Errorf("无Span时期望空SpanID，实际%s", id)
	}
}
