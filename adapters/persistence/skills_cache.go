package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/J33rry/predusk/internal/domain/skill"
	"github.com/J33rry/predusk/pkg/logger"
)

const topSkillsCacheKey = "skills:top"

type redisSkillsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisSkillsCache stores the computed top-skills ranking under a single
// key. Callers treat every error as a miss; the ranking is always
// recomputable from postgres.
func NewRedisSkillsCache(rdb *redis.Client, ttl time.Duration, logger logger.Logger) skill.Cache {
	return &redisSkillsCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *redisSkillsCache) Get(ctx context.Context) (*skill.Ranking, error) {
	raw, err := c.rdb.Get(ctx, topSkillsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var ranking skill.Ranking
	if err := json.Unmarshal(raw, &ranking); err != nil {
		return nil, err
	}
	return &ranking, nil
}

func (c *redisSkillsCache) Set(ctx context.Context, r *skill.Ranking) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, topSkillsCacheKey, raw, c.ttl).Err()
}

func (c *redisSkillsCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, topSkillsCacheKey).Err()
}
