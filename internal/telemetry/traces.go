package telemetry

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer(ServiceName)

// Start opens a span named after the calling function.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerName(2), opts...)
}

// RecordErrorAndStatus records err on the span and sets its status.
// It returns true when an error was recorded.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return true
}

// SpanNameFormatter names HTTP spans after the matched route pattern,
// falling back to the method and path.
func SpanNameFormatter(_ string, r *http.Request) string {
	return httpRoute(r)
}

// Middleware returns an HTTP middleware that instruments handlers with OpenTelemetry.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(WithHttpMetricAttributes),
	)
}

func httpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return r.Method + " " + r.URL.Path
}

// callerName turns "github.com/x/y/pkg.Type.Method" into "pkg::Type::Method".
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, ".", "::")
}

func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(res),
	), nil
}
