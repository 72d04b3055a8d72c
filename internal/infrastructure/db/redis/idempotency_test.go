package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// unreachable returns a client pointed at a closed port so every command fails fast.
func unreachable() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestIdempotencyStore_Key(t *testing.T) {
	s := NewIdempotencyStore(unreachable(), 0)
	if got := s.key("abc"); got != "idempotency:client:abc" {
		t.Fatalf("unexpected key %q", got)
	}
	if s.ttl != defaultIdempotencyTTL {
		t.Fatalf("expected default ttl, got %v", s.ttl)
	}
}

func TestIdempotencyStore_ErrorsAreWrapped(t *testing.T) {
	client := unreachable()
	defer client.Close()
	s := NewIdempotencyStore(client, time.Minute)

	_, ok, err := s.Lookup(context.Background(), "k")
	if err == nil || ok {
		t.Fatalf("expected lookup error, got ok=%v err=%v", ok, err)
	}
	if errors.Is(err, redis.Nil) {
		t.Fatalf("connection failure must not look like a miss")
	}

	if err := s.Remember(context.Background(), "k", 7); err == nil {
		t.Fatalf("expected remember error")
	}
}
