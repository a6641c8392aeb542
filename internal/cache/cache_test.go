// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// newTestCache starts an in-process miniredis server and returns a preview
// cache bound to it together with the server for inspection.
func newTestCache(t *testing.T, ttl time.Duration) (*PreviewCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewPreviewCache(client, ttl), mr
}

func TestConnectValkey(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectValkey(mr.Host(), mr.Port(), "")
	if err != nil {
		t.Fatalf("ConnectValkey: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestConnectValkeyWrongPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	if _, err := ConnectValkey(mr.Host(), mr.Port(), "wrong"); err == nil {
		t.Fatal("expected auth error, got nil")
	}
}

func TestPreviewCacheSetAndGet(t *testing.T) {
	pc, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	data, ok := pc.Get(ctx, "saas_landing")
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	body := []byte(`{"name":"SaaS Landing"}`)
	pc.Set(ctx, "saas_landing", body)

	data, ok = pc.Get(ctx, "saas_landing")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != string(body) {
		t.Errorf("data mismatch: got %q, want %q", data, body)
	}

	if !mr.Exists("preview:saas_landing") {
		t.Error("expected key stored under preview: prefix")
	}
	if got := mr.TTL("preview:saas_landing"); got != time.Minute {
		t.Errorf("TTL: got %v, want %v", got, time.Minute)
	}
}

func TestPreviewCacheExpiry(t *testing.T) {
	pc, mr := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	pc.Set(ctx, "blog_minimal", []byte("x"))
	mr.FastForward(31 * time.Second)

	if _, ok := pc.Get(ctx, "blog_minimal"); ok {
		t.Error("expected miss after TTL elapsed")
	}
}

func TestPreviewCacheInvalidateAll(t *testing.T) {
	pc, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	ids := []string{"a", "b", "c"}
	for _, id := range ids {
		pc.Set(ctx, id, []byte(id))
	}
	if err := mr.Set("session:other", "keep"); err != nil {
		t.Fatal(err)
	}

	if n := pc.InvalidateAll(ctx); n != len(ids) {
		t.Errorf("InvalidateAll deleted %d keys, want %d", n, len(ids))
	}
	for _, id := range ids {
		if _, ok := pc.Get(ctx, id); ok {
			t.Errorf("expected miss for %q after InvalidateAll", id)
		}
	}
	if !mr.Exists("session:other") {
		t.Error("keys outside the preview prefix must not be deleted")
	}
}

func TestPreviewCacheInvalidateAllManyKeys(t *testing.T) {
	pc, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3*scanBatch; i++ {
		pc.Set(ctx, "t"+strconv.Itoa(i), []byte("x"))
	}

	if n := pc.InvalidateAll(ctx); n != 3*scanBatch {
		t.Errorf("InvalidateAll deleted %d keys, want %d", n, 3*scanBatch)
	}

	if keys := mr.Keys(); len(keys) != 0 {
		t.Errorf("expected empty keyspace, found %d keys", len(keys))
	}
}

func TestPreviewCacheBackendDown(t *testing.T) {
	pc, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	pc.Set(ctx, "x", []byte("cached"))
	mr.Close()

	// Errors are swallowed and reported as misses.
	if _, ok := pc.Get(ctx, "x"); ok {
		t.Error("expected miss when backend is unreachable")
	}
	pc.Set(ctx, "y", []byte("v"))
	if n := pc.InvalidateAll(ctx); n != 0 {
		t.Errorf("InvalidateAll on dead backend: got %d, want 0", n)
	}
}

func TestNilPreviewCache(t *testing.T) {
	var pc *PreviewCache
	ctx := context.Background()

	if NewPreviewCache(nil, time.Minute) != nil {
		t.Error("NewPreviewCache(nil) should return nil")
	}
	if _, ok := pc.Get(ctx, "x"); ok {
		t.Error("nil cache should always miss")
	}
	pc.Set(ctx, "x", []byte("v"))
	if pc.InvalidateAll(ctx) != 0 {
		t.Error("nil cache InvalidateAll should report 0")
	}
	if pc.TTL() != 0 {
		t.Error("nil cache TTL should be 0")
	}
}

func TestNewPreviewCacheDefaultTTL(t *testing.T) {
	pc, _ := newTestCache(t, 0)
	if pc.TTL() != DefaultPreviewTTL {
		t.Errorf("expected DefaultPreviewTTL (%v), got %v", DefaultPreviewTTL, pc.TTL())
	}
}

func TestPreviewKey(t *testing.T) {
	if got := PreviewKey("saas_landing"); got != "preview:saas_landing" {
		t.Errorf("PreviewKey: got %q", got)
	}
}
