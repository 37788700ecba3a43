package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/iscsys/backend-go/internal/config"
	"github.com/iscsys/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	reportKeyPrefix     = "report"
	reportScanBatchSize = 100
)

// ReportCache stores rendered report payloads keyed by report name and
// filter. Payloads are JSON; callers pass the concrete report type as dest.
type ReportCache interface {
	Get(ctx context.Context, report string, filter domain.ReportFilter, dest any) (bool, error)
	Set(ctx context.Context, report string, filter domain.ReportFilter, payload any) error
	Invalidate(ctx context.Context, report string) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) Get(ctx context.Context, report string, filter domain.ReportFilter, dest any) (bool, error) {
	key := buildReportKey(report, filter)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode %s report cache: %w", report, err)
	}

	return true, nil
}

func (c *redisReportCache) Set(ctx context.Context, report string, filter domain.ReportFilter, payload any) error {
	key := buildReportKey(report, filter)
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s report cache: %w", report, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) Invalidate(ctx context.Context, report string) error {
	prefix := fmt.Sprintf("%s:%s:", reportKeyPrefix, report)
	return deleteKeysWithPrefix(ctx, c.client, prefix, reportScanBatchSize)
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, reportKeyPrefix+":", reportScanBatchSize)
}

func (n *noopReportCache) Get(ctx context.Context, report string, filter domain.ReportFilter, dest any) (bool, error) {
	return false, nil
}

func (n *noopReportCache) Set(ctx context.Context, report string, filter domain.ReportFilter, payload any) error {
	return nil
}

func (n *noopReportCache) Invalidate(ctx context.Context, report string) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildReportKey(report string, filter domain.ReportFilter) string {
	return fmt.Sprintf("%s:%s:%s", reportKeyPrefix, report, reportFilterHash(filter))
}

func reportFilterHash(filter domain.ReportFilter) string {
	parts := []string{}

	if filter.Start != "" {
		parts = append(parts, "start="+strings.TrimSpace(filter.Start))
	}
	if filter.End != "" {
		parts = append(parts, "end="+strings.TrimSpace(filter.End))
	}
	if filter.ItemID != "" {
		parts = append(parts, "item_id="+strings.TrimSpace(filter.ItemID))
	}

	if len(parts) == 0 {
		return "default"
	}

	sort.Strings(parts)
	raw := strings.Join(parts, "|")
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
