package cache

import (
	"context"
	"testing"
	"time"
)

func TestStore_SlidingExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore[int](10 * time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "s-1", 1)

	now = now.Add(8 * time.Minute)
	if _, ok := store.Get(context.Background(), "s-1"); !ok {
		t.Fatalf("expected entry to be alive before ttl")
	}

	now = now.Add(8 * time.Minute)
	if _, ok := store.Get(context.Background(), "s-1"); !ok {
		t.Fatalf("expected get to have extended the deadline")
	}

	now = now.Add(11 * time.Minute)
	if _, ok := store.Get(context.Background(), "s-1"); ok {
		t.Fatalf("expected entry to expire after idle ttl")
	}
}

func TestStore_SweepReturnsEvicted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore[string](time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "old", "a")
	now = now.Add(2 * time.Minute)
	store.Set(context.Background(), "fresh", "b")

	evicted := store.Sweep(context.Background())
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Fatalf("unexpected evicted values: %v", evicted)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one live entry, got %d", store.Len())
	}
}

func TestStore_DeleteAndBlankKeys(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	store.Set(context.Background(), "", "ignored")
	store.Set(context.Background(), "s-1", "a")
	if store.Len() != 1 {
		t.Fatalf("blank keys must not be stored, len=%d", store.Len())
	}

	store.Delete(context.Background(), "s-1")
	if _, ok := store.Get(context.Background(), "s-1"); ok {
		t.Fatalf("expected deleted entry to be gone")
	}
}

func TestStore_NonPositiveTTLNeverExpires(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore[int](0)
	store.now = func() time.Time { return now }
	store.Set(context.Background(), "s-1", 1)

	now = now.Add(24 * time.Hour)
	if evicted := store.Sweep(context.Background()); len(evicted) != 0 {
		t.Fatalf("expected nothing to expire, got %v", evicted)
	}
}
