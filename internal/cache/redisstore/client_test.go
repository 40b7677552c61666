package redisstore

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

// creates new client connected to miniredis for testing
func newMini(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	rc, err := New(ctx, mr.Addr(), time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })
	return rc, mr
}

func TestSetGet_HappyPathAndMiss(t *testing.T) {
	rc, _ := newMini(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, ok := rc.Get(ctx, "wkt:point:n=1:f=0"); ok {
		t.Fatalf("unexpected hit on empty store")
	}

	rc.Set(ctx, "wkt:point:n=1:f=0", "Point(1.000000 2.000000)")
	got, ok := rc.Get(ctx, "wkt:point:n=1:f=0")
	if !ok || got != "Point(1.000000 2.000000)" {
		t.Fatalf("got=%q ok=%v", got, ok)
	}
}

func TestTTLExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	rc, err := New(ctx, mr.Addr(), 2*time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	rc.Set(ctx, "ttl-key", "v")
	if got, ok := rc.Get(ctx, "ttl-key"); !ok || got != "v" {
		t.Fatalf("pre expiry got=%q ok=%v", got, ok)
	}

	mr.FastForward(3 * time.Second)

	if _, ok := rc.Get(ctx, "ttl-key"); ok {
		t.Fatalf("expected ttl-key to be absent after expiry")
	}
}

func TestDel(t *testing.T) {
	rc, _ := newMini(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	rc.Set(ctx, "k", "v")
	if err := rc.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok := rc.Get(ctx, "k"); ok {
		t.Fatalf("key survived DEL")
	}
}

func TestNew_RequiresAddr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := New(ctx, "", time.Minute); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
