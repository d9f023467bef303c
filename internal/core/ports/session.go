package ports

import (
	"context"

	"github.com/pawscare/vetgate/internal/core/domain"
)

// SessionState is the session controller's state machine position.
type SessionState string

const (
	StateAnonymous     SessionState = "anonymous"
	StateValidating    SessionState = "validating"
	StateAuthenticated SessionState = "authenticated"
)

// Session is the resolved view of one operator session. Token and User are
// set only when State is StateAuthenticated.
type Session struct {
	State SessionState
	Token string
	User  *domain.User
}

func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated
}

// IsAdmin is a display-layer signal for admin-only navigation and widgets,
// not a security boundary.
func (s Session) IsAdmin() bool {
	return s.User.IsAdmin()
}

// SessionService owns the login / logout / startup-validation transitions.
type SessionService interface {
	// Resolve hydrates the session from the token store, revalidating a
	// token-only record against the backend before answering.
	Resolve(ctx context.Context, sid string) (Session, error)
	// Login authenticates and persists the session record on success. A
	// failed login leaves the session anonymous and returns the backend's
	// error for the caller to display.
	Login(ctx context.Context, sid string, creds domain.Credentials) (Session, error)
	// Logout clears the persisted record. Idempotent, no network call.
	Logout(ctx context.Context, sid string) error
}
