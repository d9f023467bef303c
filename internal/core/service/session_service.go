package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pawscare/vetgate/internal/api/metrics"
	"github.com/pawscare/vetgate/internal/core/authctx"
	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// SessionService owns the login / logout / startup-validation transitions
// for operator sessions. The persisted record lives in the token store; the
// service itself keeps no per-session state beyond the in-flight
// revalidation set.
type SessionService struct {
	store   ports.TokenStore
	backend ports.AuthAPI
	log     zerolog.Logger

	mu         sync.Mutex
	validating map[string]struct{}
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(store ports.TokenStore, backend ports.AuthAPI, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:      store,
		backend:    backend,
		log:        log,
		validating: make(map[string]struct{}),
	}
}

// Resolve hydrates the session from the token store. A record holding both
// token and user is trusted without a network call; the cache stays valid
// until a request fails with 401. A token-only record enters the validating
// state and is checked against /auth/me: success caches the fetched user
// back, any failure tears the session down to anonymous. The generation is
// snapshotted before the /auth/me call so a logout that lands mid-flight
// discards the result instead of re-persisting the cleared record.
func (s *SessionService) Resolve(ctx context.Context, sid string) (ports.Session, error) {
	rec, ok, err := s.store.Load(ctx, sid)
	if err != nil {
		return ports.Session{State: ports.StateAnonymous}, err
	}
	if !ok {
		return ports.Session{State: ports.StateAnonymous}, nil
	}
	if rec.User != nil {
		return ports.Session{State: ports.StateAuthenticated, Token: rec.Token, User: rec.User}, nil
	}

	// Token without a cached user. Only one revalidation per session runs
	// at a time; concurrent resolvers observe the validating state.
	if !s.beginValidation(sid) {
		return ports.Session{State: ports.StateValidating}, nil
	}
	defer s.endValidation(sid)

	gen, err := s.store.Generation(ctx, sid)
	if err != nil {
		return ports.Session{State: ports.StateAnonymous}, err
	}

	callCtx := authctx.WithToken(authctx.WithSessionID(ctx, sid), rec.Token)
	user, err := s.backend.Me(callCtx)
	if err != nil {
		metrics.SessionRevalidationsTotal.WithLabelValues("failure").Inc()
		s.log.Info().Err(err).Str("sid", sid).Msg("stored token failed revalidation")
		// ErrUnauthorized already cleared the record through the
		// invalidator; clearing again is harmless and covers every other
		// failure the same way.
		if cerr := s.store.Clear(ctx, sid); cerr != nil {
			return ports.Session{State: ports.StateAnonymous}, cerr
		}
		return ports.Session{State: ports.StateAnonymous}, nil
	}

	cur, err := s.store.Generation(ctx, sid)
	if err != nil {
		return ports.Session{State: ports.StateAnonymous}, err
	}
	if cur != gen {
		metrics.SessionRevalidationsTotal.WithLabelValues("superseded").Inc()
		s.log.Warn().Str("sid", sid).Msg("discarding revalidation result, session superseded by logout")
		return ports.Session{State: ports.StateAnonymous}, nil
	}

	metrics.SessionRevalidationsTotal.WithLabelValues("success").Inc()
	rec.User = user
	if err := s.store.Save(ctx, sid, rec); err != nil {
		return ports.Session{State: ports.StateAnonymous}, err
	}
	return ports.Session{State: ports.StateAuthenticated, Token: rec.Token, User: user}, nil
}

// Login authenticates against the backend and persists {token, user} on
// success. The session generation is snapshotted before the network call: a
// logout that lands while the login is in flight bumps the generation, and
// the stale result is discarded instead of reinstating the session.
func (s *SessionService) Login(ctx context.Context, sid string, creds domain.Credentials) (ports.Session, error) {
	gen, err := s.store.Generation(ctx, sid)
	if err != nil {
		return ports.Session{State: ports.StateAnonymous}, err
	}

	tok, err := s.backend.Login(authctx.WithSessionID(ctx, sid), creds)
	if err != nil {
		metrics.SessionLoginsTotal.WithLabelValues(loginFailureLabel(err)).Inc()
		return ports.Session{State: ports.StateAnonymous}, err
	}

	cur, err := s.store.Generation(ctx, sid)
	if err != nil {
		return ports.Session{State: ports.StateAnonymous}, err
	}
	if cur != gen {
		metrics.SessionLoginsTotal.WithLabelValues("superseded").Inc()
		s.log.Warn().Str("sid", sid).Msg("discarding login result, session superseded by logout")
		return ports.Session{State: ports.StateAnonymous}, domain.ErrSessionSuperseded
	}

	user := tok.User
	rec := ports.SessionRecord{Token: tok.AccessToken, User: &user}
	if err := s.store.Save(ctx, sid, rec); err != nil {
		return ports.Session{State: ports.StateAnonymous}, err
	}

	metrics.SessionLoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("sid", sid).Str("role", user.Role).Msg("login")
	return ports.Session{State: ports.StateAuthenticated, Token: rec.Token, User: rec.User}, nil
}

// Logout clears the persisted record and bumps the generation so any
// in-flight login resolves as superseded. Idempotent, no network call.
func (s *SessionService) Logout(ctx context.Context, sid string) error {
	if _, err := s.store.BumpGeneration(ctx, sid); err != nil {
		return err
	}
	return s.store.Clear(ctx, sid)
}

func (s *SessionService) beginValidation(sid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.validating[sid]; busy {
		return false
	}
	s.validating[sid] = struct{}{}
	return true
}

func (s *SessionService) endValidation(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.validating, sid)
}

func loginFailureLabel(err error) string {
	var re *domain.RequestError
	if errors.As(err, &re) && re.Status == 401 {
		return "rejected"
	}
	if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUnauthorized) {
		return "rejected"
	}
	return "error"
}

// Invalidator is the ports.SessionInvalidator wired into both backend
// implementations. It clears the token store entry for the session carried
// by the request context.
type Invalidator struct {
	store ports.TokenStore
	log   zerolog.Logger
}

var _ ports.SessionInvalidator = (*Invalidator)(nil)

func NewInvalidator(store ports.TokenStore, log zerolog.Logger) *Invalidator {
	return &Invalidator{store: store, log: log}
}

// Invalidate tears down the persisted session record after an upstream 401.
// Safe to call for requests that never carried a session.
func (i *Invalidator) Invalidate(ctx context.Context) error {
	sid := authctx.SessionID(ctx)
	if sid == "" {
		return nil
	}
	metrics.SessionInvalidationsTotal.Inc()
	i.log.Info().Str("sid", sid).Msg("session invalidated by upstream 401")
	return i.store.Clear(ctx, sid)
}
