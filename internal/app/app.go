package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/outbound/openai"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases"
)

// NewSmartTasksApp creates the application: adapters, use cases, the HTTP API and the background workers.
// Extra initializers run first, which lets callers replace dependencies such as the model provider.
func NewSmartTasksApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitTaskRepository{},
			&postgres.InitProfileRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&openai.InitOpenAIClient{},

			&usecases.InitListTasks{},
			&usecases.InitCreateTask{},
			&usecases.InitUpdateTask{},
			&usecases.InitDeleteTask{},
			&usecases.InitProfileUseCases{},
			&usecases.InitSyncEmbedding{},
			&usecases.InitBackfillEmbeddings{},
			&usecases.InitSmartSearch{},
			&usecases.InitGenerateSubtasks{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.SmartTasksServer{},
			&workers.MessageRelay{},
			&workers.EmbeddingSyncSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
