package cache

import (
	"context"
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "ideas", []string{"a", "b"})

	v, ok := c.Get(ctx, "ideas")
	if !ok {
		t.Fatal("expected hit")
	}
	items, ok := v.([]string)
	if !ok || len(items) != 2 {
		t.Fatalf("unexpected value %v", v)
	}

	if _, ok := c.Get(ctx, "users"); ok {
		t.Error("expected miss for unset key")
	}
}

func TestExpiry(t *testing.T) {
	c := NewInMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "ideas", 1)
	if _, ok := c.Get(ctx, "ideas"); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get(ctx, "ideas"); ok {
		t.Error("expected miss after expiry")
	}
	// The lazy expiry on Get also removes the entry
	if c.Len() != 0 {
		t.Errorf("expected 0 entries, got %d", c.Len())
	}
}

func TestInvalidatePrefix(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "ideas", 1)
	c.Set(ctx, "ideas/123", 2)
	c.Set(ctx, "ideas/123/comments", 3)
	c.Set(ctx, "users", 4)
	c.Set(ctx, "ideasandmore", 5)

	removed := c.InvalidatePrefix(ctx, "ideas")
	if removed != 3 {
		t.Fatalf("expected 3 removals, got %d", removed)
	}

	// Exact key and everything below it are gone
	for _, key := range []string{"ideas", "ideas/123", "ideas/123/comments"} {
		if _, ok := c.Get(ctx, key); ok {
			t.Errorf("expected %q to be invalidated", key)
		}
	}

	// Sibling resources and lookalike prefixes survive
	for _, key := range []string{"users", "ideasandmore"} {
		if _, ok := c.Get(ctx, key); !ok {
			t.Errorf("expected %q to survive", key)
		}
	}
}

func TestInvalidateSubtreeOnly(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "ideas", 1)
	c.Set(ctx, "ideas/123", 2)
	c.Set(ctx, "ideas/456", 3)

	c.InvalidatePrefix(ctx, "ideas/123")

	if _, ok := c.Get(ctx, "ideas/123"); ok {
		t.Error("expected ideas/123 to be invalidated")
	}
	if _, ok := c.Get(ctx, "ideas"); !ok {
		t.Error("expected parent listing to survive a child invalidation")
	}
	if _, ok := c.Get(ctx, "ideas/456"); !ok {
		t.Error("expected sibling to survive")
	}
}

func TestCleanupSweep(t *testing.T) {
	c := NewInMemoryCache(5*time.Millisecond, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.Set(ctx, "ideas", 1)
	c.StartCleanup(ctx)
	defer c.StopCleanup()

	deadline := time.After(500 * time.Millisecond)
	for c.Len() > 0 {
		select {
		case <-deadline:
			t.Fatal("sweep never removed the expired entry")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestOverwrite(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "ideas", 1)
	c.Set(ctx, "ideas", 2)

	v, ok := c.Get(ctx, "ideas")
	if !ok || v.(int) != 2 {
		t.Fatalf("expected latest write to win, got %v", v)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}
