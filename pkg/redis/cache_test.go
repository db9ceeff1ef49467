package redis

import (
	"context"
	"testing"

	"github.com/wonny/robosector/pkg/config"
)

// disabledCache builds a cache over a disabled client; every call must
// pass through without touching a server
func disabledCache(t *testing.T) *Cache {
	t.Helper()

	cfg := &config.Config{}
	cfg.Redis.Enabled = false

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create disabled client: %v", err)
	}

	return NewCache(client, "robosector")
}

func TestCacheDisabledPassthrough(t *testing.T) {
	cache := disabledCache(t)
	ctx := context.Background()

	var dest string
	found, err := cache.Get(ctx, ReportKey(), &dest)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("Expected cache miss on disabled client")
	}

	if err := cache.Set(ctx, ReportKey(), "value", TTLDaily); err != nil {
		t.Errorf("Set should be a no-op, got %v", err)
	}
	if err := cache.Delete(ctx, FlowReportKey()); err != nil {
		t.Errorf("Delete should be a no-op, got %v", err)
	}
}

func TestGetOrSetDisabledComputes(t *testing.T) {
	cache := disabledCache(t)
	ctx := context.Background()

	calls := 0
	var dest map[string]int
	fn := func() (interface{}, error) {
		calls++
		return map[string]int{"score": 75}, nil
	}

	if err := cache.GetOrSet(ctx, ReportKey(), &dest, TTLDaily, fn); err != nil {
		t.Fatalf("GetOrSet failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected fn called once, got %d", calls)
	}
	if dest["score"] != 75 {
		t.Errorf("Expected dest filled from fn, got %v", dest)
	}

	// Disabled cache never stores, so every call recomputes
	if err := cache.GetOrSet(ctx, ReportKey(), &dest, TTLDaily, fn); err != nil {
		t.Fatalf("GetOrSet failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected fn called twice, got %d", calls)
	}
}

func TestCacheKeys(t *testing.T) {
	if got := ReportKey(); got != "report:latest" {
		t.Errorf("ReportKey() = %s", got)
	}
	if got := FlowReportKey(); got != "flow:latest" {
		t.Errorf("FlowReportKey() = %s", got)
	}
	if got := StockResultKey("277810"); got != "stock:result:277810" {
		t.Errorf("StockResultKey() = %s", got)
	}
}
