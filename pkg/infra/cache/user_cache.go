package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	"github.com/go-redis/redis/v8"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

type cachedUserRepository struct {
	logger *logrus.Logger
	repo   comment.UserRepository
	local  *lru.Cache[string, comment.User]
	client Client
	ttl    time.Duration
}

// NewCachedUserRepository looks users up in an in-process LRU, then redis
// when client is non-nil, then repo. Users are immutable once seeded.
func NewCachedUserRepository(
	logger *logrus.Logger,
	repo comment.UserRepository,
	client Client,
	size int,
	ttl time.Duration,
) (comment.UserRepository, error) {
	local, err := lru.New[string, comment.User](size)
	if err != nil {
		return nil, fmt.Errorf("user cache: %w", err)
	}
	return &cachedUserRepository{
		logger: logger,
		repo:   repo,
		local:  local,
		client: client,
		ttl:    ttl,
	}, nil
}

func (c *cachedUserRepository) GetByID(ctx context.Context, id string) (*comment.User, error) {
	if u, ok := c.local.Get(id); ok {
		return &u, nil
	}

	key := fmt.Sprintf(UserKeyPattern, id)
	if c.client != nil {
		raw, err := c.client.Get(ctx, key)
		switch {
		case err == nil:
			var u comment.User
			if err := jsonAPI.Unmarshal([]byte(raw), &u); err == nil {
				c.local.Add(id, u)
				return &u, nil
			}
			c.logger.WithField("key", key).Warn("discarding malformed cached user")
		case !errors.Is(err, redis.Nil):
			c.logger.WithError(err).Warn("failed to read user from redis")
		}
	}

	u, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.local.Add(id, *u)

	if c.client != nil {
		if b, err := jsonAPI.Marshal(u); err == nil {
			if err := c.client.Set(ctx, key, string(b), c.ttl); err != nil {
				c.logger.WithError(err).Warn("failed to cache user in redis")
			}
		}
	}
	return u, nil
}

func (c *cachedUserRepository) FirstAdmin(ctx context.Context) (*comment.User, error) {
	return c.repo.FirstAdmin(ctx)
}
