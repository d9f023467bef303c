package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

func newTestStore(t *testing.T, ttl time.Duration) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStore(client, ttl), mr
}

func TestTokenStore_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if _, ok, _ := s.Load(ctx, "sid-1"); ok {
		t.Fatal("empty store must miss")
	}

	user := domain.User{ID: "u1", Role: domain.RoleVet}
	if err := s.Save(ctx, "sid-1", ports.SessionRecord{Token: "tok", User: &user}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rec, ok, err := s.Load(ctx, "sid-1")
	if err != nil || !ok {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}
	if rec.Token != "tok" || rec.User == nil || rec.User.ID != "u1" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	if err := s.Clear(ctx, "sid-1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, ok, _ := s.Load(ctx, "sid-1"); ok {
		t.Fatal("record must be gone after clear")
	}
}

func TestTokenStore_TokenOnlyRecord(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := s.Save(ctx, "sid-1", ports.SessionRecord{Token: "tok"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rec, ok, err := s.Load(ctx, "sid-1")
	if err != nil || !ok {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}
	if rec.Token != "tok" || rec.User != nil {
		t.Fatalf("expected token-only record, got %+v", rec)
	}
}

func TestTokenStore_GenerationSurvivesClearWithTTL(t *testing.T) {
	s, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	gen, err := s.Generation(ctx, "sid-1")
	if err != nil || gen != 0 {
		t.Fatalf("fresh generation = %d, err = %v", gen, err)
	}

	if _, err := s.BumpGeneration(ctx, "sid-1"); err != nil {
		t.Fatalf("bump failed: %v", err)
	}
	_ = s.Clear(ctx, "sid-1")

	gen, _ = s.Generation(ctx, "sid-1")
	if gen != 1 {
		t.Fatalf("generation = %d after clear, want 1", gen)
	}

	// The counter key expires with the session TTL instead of living forever.
	if ttl := mr.TTL(genKeyPrefix + "sid-1"); ttl != time.Hour {
		t.Fatalf("generation key TTL = %v, want %v", ttl, time.Hour)
	}
}

func TestTokenStore_RecordExpires(t *testing.T) {
	s, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	if err := s.Save(ctx, "sid-1", ports.SessionRecord{Token: "tok"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, _ := s.Load(ctx, "sid-1"); ok {
		t.Fatal("record must expire with the session TTL")
	}
}
