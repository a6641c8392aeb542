// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preview.go caches encoded template preview responses in Valkey so the
// gallery can poll previews without re-encoding them on every request.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// previewKeyPrefix is the Valkey key prefix for cached previews.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long an encoded preview stays cached.
	DefaultPreviewTTL = 10 * time.Minute

	scanBatch = 100
)

// PreviewCache manages preview response caching in Valkey. A nil
// *PreviewCache is valid and behaves as an always-empty cache.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey client.
// Returns nil when client is nil so callers can pass it along unconditionally.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// PreviewKey returns the Valkey key for a template's preview.
func PreviewKey(templateID string) string {
	return previewKeyPrefix + templateID
}

// Get returns the cached preview body for a template, if present.
func (pc *PreviewCache) Get(ctx context.Context, templateID string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, PreviewKey(templateID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "template", templateID, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "template", templateID)
	return val, true
}

// Set stores an encoded preview body with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, templateID string, body []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, PreviewKey(templateID), body, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "template", templateID, "error", err)
	}
}

// InvalidateAll removes every cached preview. Keys are collected with a
// full SCAN before anything is deleted, so deletes never disturb the cursor.
// It returns the number of keys deleted.
func (pc *PreviewCache) InvalidateAll(ctx context.Context) int {
	if pc == nil {
		return 0
	}

	var keys []string
	iter := pc.client.Scan(ctx, 0, previewKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("preview cache scan error", "error", err)
		return 0
	}

	var deleted int
	for batch := range slices.Chunk(keys, scanBatch) {
		n, err := pc.client.Del(ctx, batch...).Result()
		if err != nil {
			slog.Warn("preview cache bulk delete error", "error", err)
			continue
		}
		deleted += int(n)
	}
	if deleted > 0 {
		slog.Info("preview cache cleared", "deleted", deleted)
	}
	return deleted
}

// TTL returns the expiry applied to new entries.
func (pc *PreviewCache) TTL() time.Duration {
	if pc == nil {
		return 0
	}
	return pc.ttl
}
