package memory

import (
	"context"
	"fmt"
	"testing"
)

func TestGetSet(t *testing.T) {
	c, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatalf("unexpected hit")
	}
	c.Set(ctx, "k", "Point(1.000000 2.000000)")
	got, ok := c.Get(ctx, "k")
	if !ok || got != "Point(1.000000 2.000000)" {
		t.Fatalf("got=%q ok=%v", got, ok)
	}
}

func TestEviction(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), "v")
	}
	if c.Len() > 2 {
		t.Fatalf("len=%d exceeds capacity", c.Len())
	}
}
