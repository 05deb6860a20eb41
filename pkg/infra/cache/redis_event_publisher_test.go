package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisEventPublisher_Publish(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	publisher := cache.NewRedisEventPublisher(cache.NewClientWithRedis(db), cache.ModerationChannel)

	ev := event.CommentFlaggedEvent{
		CommentID: "5f0c7a0e-8f3b-4b8e-9d57-3c1a2d1e0b9f",
		ModID:     "default-admin",
		Source:    event.SourceAuto,
		At:        time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	payload, err := cache.EncodeMessage(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "CommentFlaggedEvent",
		"event": {
			"comment_id": "5f0c7a0e-8f3b-4b8e-9d57-3c1a2d1e0b9f",
			"mod_id": "default-admin",
			"source": "auto",
			"at": "2025-01-02T03:04:05Z"
		}
	}`, string(payload))

	redisMock.ExpectPublish(string(cache.ModerationChannel), string(payload)).SetVal(1)

	require.NoError(t, publisher.Publish(context.Background(), ev))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
