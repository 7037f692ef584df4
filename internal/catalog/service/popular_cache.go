package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"filmorate/internal/catalog/models"

	"github.com/redis/go-redis/v9"
)

// PopularCache is a read-through redis cache for the popular-films list. A nil
// receiver or nil client is a clean pass-through, so caching stays optional at
// composition time.
type PopularCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewPopularCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *PopularCache {
	return &PopularCache{client: client, ttl: ttl, logger: logger}
}

func popularKey(count int) string {
	return fmt.Sprintf("popular:%d", count)
}

func (c *PopularCache) Get(ctx context.Context, count int) ([]models.Film, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, popularKey(count)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("popular cache read failed", "error", err)
		}
		return nil, false
	}

	var films []models.Film
	if err := json.Unmarshal(data, &films); err != nil {
		c.logger.Warn("popular cache entry corrupt, dropping", "error", err)
		c.client.Del(ctx, popularKey(count))
		return nil, false
	}

	return films, true
}

func (c *PopularCache) Set(ctx context.Context, count int, films []models.Film) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(films)
	if err != nil {
		c.logger.Warn("popular cache encode failed", "error", err)
		return
	}

	if err := c.client.Set(ctx, popularKey(count), data, c.ttl).Err(); err != nil {
		c.logger.Warn("popular cache write failed", "error", err)
	}
}

// Invalidate drops every cached ranking. Called on any like mutation and on
// film create/update.
func (c *PopularCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, "popular:*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("popular cache invalidation failed", "error", err)
	}
}
