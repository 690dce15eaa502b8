package redis

import (
	"context"
	"testing"
	"time"
)

func TestUpdateStoreMarkSeen(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewUpdateStore(client, time.Hour)
	ctx := context.Background()

	seen, err := store.MarkSeen(ctx, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen {
		t.Fatalf("first delivery must not be reported as seen")
	}

	seen, err = store.MarkSeen(ctx, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seen {
		t.Fatalf("second delivery must be reported as seen")
	}

	seen, err = store.MarkSeen(ctx, 101)
	if err != nil || seen {
		t.Fatalf("other update ids are independent, got seen=%v err=%v", seen, err)
	}
}

func TestUpdateStoreExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewUpdateStore(client, time.Minute)
	ctx := context.Background()

	if _, err := store.MarkSeen(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ttl := mr.TTL("telegram:update:7"); ttl != time.Minute {
		t.Fatalf("expected ttl of 1m, got %s", ttl)
	}

	mr.FastForward(2 * time.Minute)

	seen, err := store.MarkSeen(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen {
		t.Fatalf("expired mark must not be reported as seen")
	}
}

func TestUpdateStoreServerDown(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewUpdateStore(client, time.Hour)
	mr.Close()

	if _, err := store.MarkSeen(context.Background(), 1); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}
