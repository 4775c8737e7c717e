package telemetry

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "/smart-search", nil)
	assert.Equal(t, "POST /smart-search", SpanNameFormatter("", req))

	req.Pattern = "GET /api/v1/tasks/{taskId}"
	assert.Equal(t, "GET /api/v1/tasks/{taskId}", SpanNameFormatter("", req))
}

func TestRecordErrorAndStatus(t *testing.T) {
	span := &spanRecorder{}
	assert.True(t, RecordErrorAndStatus(span, errors.New("provider down")))
	assert.Equal(t, "provider down", span.lastError)
	assert.Equal(t, codes.Error, span.statusCode)

	span = &spanRecorder{}
	assert.False(t, RecordErrorAndStatus(span, nil))
	assert.Empty(t, span.lastError)
	assert.Equal(t, codes.Ok, span.statusCode)
}

func TestStart(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)))
	previous := tracer
	tracer = tp.Tracer("test")
	t.Cleanup(func() { tracer = previous })

	_, span := Start(t.Context())
	span.End()

	spans := exporter.GetSpans()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "telemetry::TestStart", spans[0].Name)
	}
}

type spanRecorder struct {
	trace.Span
	lastError  string
	statusCode codes.Code
}

func (s *spanRecorder) RecordError(err error, _ ...trace.EventOption) {
	s.lastError = err.Error()
}

func (s *spanRecorder) SetStatus(code codes.Code, _ string) {
	s.statusCode = code
}
