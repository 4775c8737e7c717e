package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var _ gen.ServerInterface = (*SmartTasksServer)(nil)

// SmartTasksServer serves the REST API and the function endpoints.
type SmartTasksServer struct {
	Port                      int                         `config:"HTTP_PORT" default:"8080"`
	JWTSecret                 string                      `config:"JWT_SECRET"`
	Logger                    *zap.Logger                 `resolve:""`
	ListTasksUseCase          usecases.ListTasks          `resolve:""`
	GetTaskUseCase            usecases.GetTask            `resolve:""`
	CreateTaskUseCase         usecases.CreateTask         `resolve:""`
	UpdateTaskUseCase         usecases.UpdateTask         `resolve:""`
	DeleteTaskUseCase         usecases.DeleteTask         `resolve:""`
	GetProfileUseCase         usecases.GetProfile         `resolve:""`
	UpdateProfileUseCase      usecases.UpdateProfile      `resolve:""`
	SyncEmbeddingUseCase      usecases.SyncEmbedding      `resolve:""`
	BackfillEmbeddingsUseCase usecases.BackfillEmbeddings `resolve:""`
	GenerateSubtasksUseCase   usecases.GenerateSubtasks   `resolve:""`
	SmartSearchUseCase        usecases.SmartSearch        `resolve:""`
}

// Handler builds the HTTP handler with routing, authentication, telemetry and CORS.
func (api SmartTasksServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			NewAuthenticator(api.JWTSecret).Middleware,
			telemetry.Middleware("smarttasks-api"),
		},
		ErrorHandlerFunc: paramErrorHandler,
	})

	// CORS wraps everything so pre-flight requests never reach the router.
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusOK,
	}).Handler(h)
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (api SmartTasksServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info("SmartTasksServer: listening", zap.Int("port", api.Port))
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error("SmartTasksServer: error during shutdown", zap.Error(err))
		} else {
			api.Logger.Info("SmartTasksServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the SmartTasksServer is ready by performing a health check.
func (api SmartTasksServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
