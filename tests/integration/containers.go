//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

const composeFile = "../../docker-compose.deps.yml"

// readiness lists the wait strategy of every service the app connects to.
var readiness = map[string]wait.Strategy{
	"postgres": wait.NewLogStrategy("database system is ready to accept connections").WithOccurrence(2),
	"vault":    wait.NewLogStrategy("Vault server started!"),
	"pubsub":   wait.ForListeningPort("8681/tcp"),
}

// InitDockerCompose brings up the backing services before the app initializers run
// and removes them, volumes included, when the app stops.
type InitDockerCompose struct {
	stack compose.ComposeStack
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose(composeFile)
	if err != nil {
		return ctx, fmt.Errorf("failed to load %s: %w", composeFile, err)
	}

	var stack compose.ComposeStack = dc

	for service, strategy := range readiness {
		stack = stack.WaitForService(service, strategy)
	}
	if err := stack.Up(ctx, compose.Wait(true)); err != nil {
		return ctx, fmt.Errorf("failed to start dependencies: %w", err)
	}

	i.stack = stack
	return ctx, nil
}

func (i *InitDockerCompose) Close() {
	if i.stack == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := i.stack.Down(ctx, compose.RemoveOrphans(true), compose.RemoveVolumes(true)); err != nil {
		log.Printf("failed to stop dependencies: %v", err)
	}
}
