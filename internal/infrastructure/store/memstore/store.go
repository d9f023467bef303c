// Package memstore is the in-memory ports.TokenStore used by tests and by
// single-instance deployments that run without Redis.
package memstore

import (
	"context"
	"sync"

	"github.com/pawscare/vetgate/internal/core/ports"
)

type TokenStore struct {
	mu   sync.Mutex
	recs map[string]ports.SessionRecord
	gens map[string]int64
}

var _ ports.TokenStore = (*TokenStore)(nil)

func New() *TokenStore {
	return &TokenStore{
		recs: make(map[string]ports.SessionRecord),
		gens: make(map[string]int64),
	}
}

func (s *TokenStore) Save(_ context.Context, sid string, rec ports.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[sid] = rec
	return nil
}

func (s *TokenStore) Load(_ context.Context, sid string) (ports.SessionRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[sid]
	return rec, ok, nil
}

func (s *TokenStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, sid)
	return nil
}

func (s *TokenStore) Generation(_ context.Context, sid string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[sid], nil
}

func (s *TokenStore) BumpGeneration(_ context.Context, sid string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[sid]++
	return s.gens[sid], nil
}
