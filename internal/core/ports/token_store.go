package ports

import (
	"context"

	"github.com/pawscare/vetgate/internal/core/domain"
)

// SessionRecord is the persisted copy of an authenticated session: the
// bearer token plus the cached user profile. User may be nil when only the
// token survived (e.g. a partial write); the session controller revalidates
// such records against /auth/me on the next resolve.
type SessionRecord struct {
	Token string
	User  *domain.User
}

// TokenStore persists session records keyed by the gateway session ID.
// Pure key-value persistence: no validation, no expiry inspection.
type TokenStore interface {
	// Save writes the record, replacing any previous one.
	Save(ctx context.Context, sid string, rec SessionRecord) error
	// Load returns the record and whether one exists.
	Load(ctx context.Context, sid string) (SessionRecord, bool, error)
	// Clear removes the record. Clearing an absent record is not an error.
	Clear(ctx context.Context, sid string) error

	// Generation returns the session's monotonically increasing generation
	// counter. Logout bumps it; a login that started under an older
	// generation must not persist its result.
	Generation(ctx context.Context, sid string) (int64, error)
	// BumpGeneration increments and returns the counter.
	BumpGeneration(ctx context.Context, sid string) (int64, error)
}

// SessionInvalidator is the single cross-cutting seam for session teardown.
// The backend clients call it whenever any endpoint answers 401, before
// surfacing domain.ErrUnauthorized to the caller.
type SessionInvalidator interface {
	Invalidate(ctx context.Context) error
}
