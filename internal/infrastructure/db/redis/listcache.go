package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopgrid/admin-api/internal/core/listing"
)

// ListCache shares derived list pages across instances, keyed by parameter
// fingerprint and page. Entries are TTL-bound; callers tolerate misses and
// bounded staleness. Failures degrade to a miss, never an error.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ListCache{client: client, ttl: ttl}
}

func (c *ListCache) GetPage(ctx context.Context, fingerprint string, page int) (*listing.Page, bool) {
	payload, err := c.client.Get(ctx, c.key(fingerprint, page)).Bytes()
	if err != nil {
		return nil, false
	}

	var result listing.Page
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *ListCache) SetPage(ctx context.Context, fingerprint string, result *listing.Page) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	// Keyed by the clamped page, so an out-of-range request still lands on
	// the entry of the page actually served.
	_ = c.client.Set(ctx, c.key(fingerprint, result.Page), payload, c.ttl).Err()
}

// Invalidate drops every cached page of one collection.
func (c *ListCache) Invalidate(ctx context.Context, collection string) {
	pattern := "list:" + collection + "|*"
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = c.client.Del(ctx, iter.Val()).Err()
	}
}

func (c *ListCache) key(fingerprint string, page int) string {
	return fmt.Sprintf("list:%s:p%d", fingerprint, page)
}
