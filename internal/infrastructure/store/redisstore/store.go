package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Key layout mirrors the two durable entries the session record consists of:
// the raw token string and the user profile JSON, written and cleared
// together. The generation counter lives under its own key and survives
// Clear so a stale in-flight login cannot resurrect a logged-out session; it
// carries the same TTL as the record, refreshed on every bump, since it only
// needs to outlive an in-flight backend call.
const (
	tokenKeyPrefix = "session:token:"
	userKeyPrefix  = "session:user:"
	genKeyPrefix   = "session:gen:"
)

// Config captures the settings for establishing the Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// TokenStore is the Redis-backed ports.TokenStore. Records expire after ttl
// so abandoned sessions do not accumulate.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.TokenStore = (*TokenStore)(nil)

// NewTokenStore wraps an established Redis client. ttl <= 0 disables expiry.
func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, ttl: ttl}
}

func (s *TokenStore) Save(ctx context.Context, sid string, rec ports.SessionRecord) error {
	userJSON := []byte("null")
	if rec.User != nil {
		var err error
		userJSON, err = json.Marshal(rec.User)
		if err != nil {
			return fmt.Errorf("marshal session user: %w", err)
		}
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKeyPrefix+sid, rec.Token, s.ttl)
	pipe.Set(ctx, userKeyPrefix+sid, userJSON, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (s *TokenStore) Load(ctx context.Context, sid string) (ports.SessionRecord, bool, error) {
	vals, err := s.client.MGet(ctx, tokenKeyPrefix+sid, userKeyPrefix+sid).Result()
	if err != nil {
		return ports.SessionRecord{}, false, fmt.Errorf("load session record: %w", err)
	}

	token, _ := vals[0].(string)
	if token == "" {
		return ports.SessionRecord{}, false, nil
	}

	rec := ports.SessionRecord{Token: token}
	if raw, ok := vals[1].(string); ok && raw != "" && raw != "null" {
		var user domain.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			rec.User = &user
		}
		// An unparseable cached profile is treated as absent; the session
		// controller revalidates against /auth/me.
	}
	return rec, true, nil
}

func (s *TokenStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, tokenKeyPrefix+sid, userKeyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}

func (s *TokenStore) Generation(ctx context.Context, sid string) (int64, error) {
	n, err := s.client.Get(ctx, genKeyPrefix+sid).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("session generation: %w", err)
	}
	return n, nil
}

func (s *TokenStore) BumpGeneration(ctx context.Context, sid string) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, genKeyPrefix+sid)
	if s.ttl > 0 {
		pipe.Expire(ctx, genKeyPrefix+sid, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("bump session generation: %w", err)
	}
	return incr.Val(), nil
}
