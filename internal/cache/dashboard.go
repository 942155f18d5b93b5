package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"pharma-dashboard/internal/config"
	"pharma-dashboard/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardSummaryKey = "dashboard:summary:default"
	defaultDashboardTTL = time.Minute
)

type DashboardSummaryCache interface {
	GetSummary(ctx context.Context) (*model.DashboardSummary, bool, error)
	SetSummary(ctx context.Context, summary *model.DashboardSummary) error
	Invalidate(ctx context.Context) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

func NewDashboardCache(cfg config.CacheConfig) (DashboardSummaryCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.DashboardTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}

	return &redisDashboardCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopDashboardCache() DashboardSummaryCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) GetSummary(ctx context.Context) (*model.DashboardSummary, bool, error) {
	payload, err := c.client.Get(ctx, dashboardSummaryKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var summary model.DashboardSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, false, fmt.Errorf("decode dashboard summary cache: %w", err)
	}

	return &summary, true, nil
}

func (c *redisDashboardCache) SetSummary(ctx context.Context, summary *model.DashboardSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode dashboard summary cache: %w", err)
	}

	if err := c.client.Set(ctx, dashboardSummaryKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisDashboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, dashboardSummaryKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (n *noopDashboardCache) GetSummary(ctx context.Context) (*model.DashboardSummary, bool, error) {
	return nil, false, nil
}

func (n *noopDashboardCache) SetSummary(ctx context.Context, summary *model.DashboardSummary) error {
	return nil
}

func (n *noopDashboardCache) Invalidate(ctx context.Context) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}
