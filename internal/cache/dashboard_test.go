package cache

import (
	"context"
	"testing"
	"time"

	"pharma-dashboard/internal/config"
	"pharma-dashboard/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
)

func newRedisCache(t *testing.T, ttlSeconds int) (DashboardSummaryCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewDashboardCache(config.CacheConfig{
		Enabled:             true,
		RedisHost:           mr.Host(),
		RedisPort:           mr.Port(),
		DashboardTTLSeconds: ttlSeconds,
	})
	if err != nil {
		t.Fatalf("NewDashboardCache: %v", err)
	}
	return c, mr
}

func sampleSummary() *model.DashboardSummary {
	return &model.DashboardSummary{
		Sales: model.SalesSummary{
			TotalRevenue: decimal.RequireFromString("222900000.25"),
			TotalOrders:  5,
			TopProducts:  []model.TopProduct{{Name: "Masport 500", Quantity: 1700, Revenue: decimal.NewFromInt(70200000)}},
		},
		Financial: model.FinancialSummary{ProfitMargin: decimal.RequireFromString("55.0")},
	}
}

func TestRedisDashboardCache(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, 0)

	t.Run("Get_Miss", func(t *testing.T) {
		got, ok, err := c.GetSummary(ctx)
		if err != nil || ok || got != nil {
			t.Fatalf("expected clean miss, got %v %v %v", got, ok, err)
		}
	})

	t.Run("SetThenGet", func(t *testing.T) {
		if err := c.SetSummary(ctx, sampleSummary()); err != nil {
			t.Fatalf("SetSummary: %v", err)
		}
		got, ok, err := c.GetSummary(ctx)
		if err != nil || !ok {
			t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
		}
		if !got.Sales.TotalRevenue.Equal(decimal.RequireFromString("222900000.25")) || got.Sales.TotalOrders != 5 {
			t.Errorf("unexpected sales after round trip: %+v", got.Sales)
		}
		if len(got.Sales.TopProducts) != 1 || got.Sales.TopProducts[0].Name != "Masport 500" {
			t.Errorf("unexpected top products: %+v", got.Sales.TopProducts)
		}
		if !got.Financial.ProfitMargin.Equal(decimal.NewFromInt(55)) {
			t.Errorf("unexpected margin: %s", got.Financial.ProfitMargin)
		}
	})

	t.Run("DefaultTTL", func(t *testing.T) {
		if ttl := mr.TTL(dashboardSummaryKey); ttl != defaultDashboardTTL {
			t.Errorf("expected ttl %s, got %s", defaultDashboardTTL, ttl)
		}
	})

	t.Run("Invalidate", func(t *testing.T) {
		if err := c.Invalidate(ctx); err != nil {
			t.Fatalf("Invalidate: %v", err)
		}
		if mr.Exists(dashboardSummaryKey) {
			t.Error("expected key to be deleted")
		}
		if _, ok, err := c.GetSummary(ctx); ok || err != nil {
			t.Errorf("expected miss after invalidate, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("Invalidate_MissingKey", func(t *testing.T) {
		if err := c.Invalidate(ctx); err != nil {
			t.Errorf("deleting an absent key should succeed, got %v", err)
		}
	})

	t.Run("CorruptPayload", func(t *testing.T) {
		if err := mr.Set(dashboardSummaryKey, "not-json"); err != nil {
			t.Fatalf("seed key: %v", err)
		}
		if _, ok, err := c.GetSummary(ctx); err == nil || ok {
			t.Errorf("expected decode error, got ok=%v err=%v", ok, err)
		}
	})
}

func TestRedisDashboardCache_Expires(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, 30)

	if err := c.SetSummary(ctx, sampleSummary()); err != nil {
		t.Fatalf("SetSummary: %v", err)
	}
	if ttl := mr.TTL(dashboardSummaryKey); ttl != 30*time.Second {
		t.Errorf("expected ttl 30s, got %s", ttl)
	}

	mr.FastForward(31 * time.Second)

	if _, ok, err := c.GetSummary(ctx); ok || err != nil {
		t.Errorf("expected miss after expiry, got ok=%v err=%v", ok, err)
	}
}

func TestNewDashboardCache(t *testing.T) {
	t.Run("Disabled_Noop", func(t *testing.T) {
		c, err := NewDashboardCache(config.CacheConfig{Enabled: false})
		if err != nil {
			t.Fatalf("NewDashboardCache: %v", err)
		}
		if _, ok := c.(*noopDashboardCache); !ok {
			t.Errorf("expected noop cache, got %T", c)
		}
	})

	t.Run("FromURL", func(t *testing.T) {
		mr := miniredis.RunT(t)
		c, err := NewDashboardCache(config.CacheConfig{Enabled: true, RedisURL: "redis://" + mr.Addr()})
		if err != nil {
			t.Fatalf("NewDashboardCache: %v", err)
		}
		if _, ok := c.(*redisDashboardCache); !ok {
			t.Errorf("expected redis cache, got %T", c)
		}
	})

	t.Run("InvalidURL", func(t *testing.T) {
		if _, err := NewDashboardCache(config.CacheConfig{Enabled: true, RedisURL: "http://nope"}); err == nil {
			t.Error("expected invalid url error")
		}
	})
}

func TestBuildRedisOptions_Defaults(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{RedisDB: 2, RedisPassword: "secret"})
	if err != nil {
		t.Fatalf("buildRedisOptions: %v", err)
	}
	if opts.Addr != "127.0.0.1:6379" || opts.DB != 2 || opts.Password != "secret" {
		t.Errorf("unexpected options: addr=%s db=%d", opts.Addr, opts.DB)
	}
}

func TestNoopDashboardCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopDashboardCache()

	if err := c.SetSummary(ctx, sampleSummary()); err != nil {
		t.Fatalf("SetSummary: %v", err)
	}
	if got, ok, err := c.GetSummary(ctx); got != nil || ok || err != nil {
		t.Errorf("noop cache must always miss, got %v %v %v", got, ok, err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Errorf("Invalidate: %v", err)
	}
}
