package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// InitHttpClient registers an *http.Client instrumented with OpenTelemetry
// and with retry capabilities.
type InitHttpClient struct {
	Logger    *zap.Logger   `resolve:""`
	RetryMax  int           `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	RetryWait time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"5s"`
	Timeout   time.Duration `config:"HTTP_CLIENT_TIMEOUT" default:"60s"`
}

// Initialize builds the client and registers it in the dependency container.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(i.newClient())
	return ctx, nil
}

func (i InitHttpClient) newClient() *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = i.RetryWait
	retryClient.RetryMax = i.RetryMax
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = leveledLogger{logger: i.Logger}

	stdClient := retryClient.StandardClient()
	stdClient.Timeout = i.Timeout
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return stdClient
}

// dontRetry500StatusPolicy prevents retries on HTTP 500 Internal Server Error responses
// and on cancelled contexts.
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger *zap.Logger
}

func (l leveledLogger) Error(msg string, kv ...any) { l.sugar().Errorw(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...any)  { l.sugar().Infow(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...any) { l.sugar().Debugw(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...any)  { l.sugar().Warnw(msg, kv...) }

func (l leveledLogger) sugar() *zap.SugaredLogger {
	if l.logger == nil {
		return zap.NewNop().Sugar()
	}
	return l.logger.Sugar()
}
