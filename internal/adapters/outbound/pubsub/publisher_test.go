package pubsub

import (
	"context"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestEventPublisher_PublishEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	taskID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	payload := []byte(`{"type":"TASK.CREATED","task_id":"223e4567-e89b-12d3-a456-426614174000","title":"Plan a wedding"}`)

	tests := map[string]struct {
		event       domain.OutboxEvent
		createTopic bool
		expectErr   bool
	}{
		"success": {
			event: domain.OutboxEvent{
				ID:         eventID,
				EntityType: domain.OutboxEntityType_Task,
				EntityID:   taskID,
				Topic:      domain.OutboxTopic_Tasks,
				EventType:  domain.EventType_TASK_CREATED,
				Payload:    payload,
			},
			createTopic: true,
		},
		"topic-not-found": {
			event: domain.OutboxEvent{
				ID:        eventID,
				EntityID:  taskID,
				Topic:     "missing-topic",
				EventType: domain.EventType_TASK_CREATED,
				Payload:   payload,
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := pstest.NewServer()
			defer server.Close() //nolint:errcheck

			projectID := "smarttasks-test"
			subID := string(tt.event.Topic) + "-sub"

			conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			require.NoError(t, err)
			defer conn.Close() //nolint:errcheck

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			client, err := pubsubV2.NewClient(ctx, projectID, option.WithGRPCConn(conn))
			require.NoError(t, err)
			defer client.Close() //nolint:errcheck

			if tt.createTopic {
				topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
					Name: "projects/" + projectID + "/topics/" + string(tt.event.Topic),
				})
				require.NoError(t, err)
				_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
					Name:  "projects/" + projectID + "/subscriptions/" + subID,
					Topic: topic.GetName(),
				})
				require.NoError(t, err)
			}

			publishCtx, publishCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer publishCancel()

			err = NewEventPublisher(client).PublishEvent(publishCtx, tt.event)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			msgs := server.Messages()
			require.Len(t, msgs, 1)
			assert.Equal(t, payload, msgs[0].Data)
			assert.Equal(t, "TASK.CREATED", msgs[0].Attributes[AttrEventType])
			assert.Equal(t, "Task", msgs[0].Attributes[AttrEntityType])
			assert.Equal(t, taskID.String(), msgs[0].Attributes[AttrEntityID])
		})
	}
}

func TestInitPublisher_Initialize(t *testing.T) {
	init := InitPublisher{
		Client: &pubsubV2.Client{},
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	res, err := depend.Resolve[domain.EventPublisher]()
	assert.NoError(t, err)
	assert.NotEmpty(t, res)
}
