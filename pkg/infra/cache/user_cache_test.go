package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment/mocks"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCachedUserRepository_LocalOnly(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	user := &comment.User{ID: "default-user", Username: "User", Role: comment.RoleUser}
	repo.EXPECT().GetByID(mock.Anything, "default-user").Return(user, nil).Once()

	cached, err := cache.NewCachedUserRepository(quietLogger(), repo, nil, 8, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := cached.GetByID(context.Background(), "default-user")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	}
}

func TestCachedUserRepository_Redis(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	client := cache.NewClientWithRedis(db)
	admin := comment.User{ID: "default-admin", Username: "Admin", Role: comment.RoleAdmin}
	raw, err := json.Marshal(admin)
	require.NoError(t, err)

	t.Run("hit in redis skips repository", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		redisMock.ExpectGet("user:default-admin").SetVal(string(raw))

		cached, err := cache.NewCachedUserRepository(quietLogger(), repo, client, 8, time.Minute)
		require.NoError(t, err)

		got, err := cached.GetByID(context.Background(), "default-admin")
		require.NoError(t, err)
		assert.Equal(t, admin, *got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("miss populates redis", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		repo.EXPECT().GetByID(mock.Anything, "default-admin").Return(&admin, nil).Once()
		redisMock.ExpectGet("user:default-admin").RedisNil()
		redisMock.ExpectSet("user:default-admin", string(raw), time.Minute).SetVal("OK")

		cached, err := cache.NewCachedUserRepository(quietLogger(), repo, client, 8, time.Minute)
		require.NoError(t, err)

		got, err := cached.GetByID(context.Background(), "default-admin")
		require.NoError(t, err)
		assert.Equal(t, admin, *got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("repository error is returned", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errors.New("not found")).Once()
		redisMock.ExpectGet("user:ghost").RedisNil()

		cached, err := cache.NewCachedUserRepository(quietLogger(), repo, client, 8, time.Minute)
		require.NoError(t, err)

		_, err = cached.GetByID(context.Background(), "ghost")
		assert.Error(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
