// Package authctx carries per-request auth state through context: the
// gateway session ID assigned by the guard and the bearer token attached to
// upstream requests.
package authctx

import "context"

type ctxKey int

const (
	tokenKey ctxKey = iota
	sessionIDKey
)

// WithToken returns a context carrying the bearer token sent on
// authenticated backend requests.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// Token returns the bearer token, or "" when the request is unauthenticated.
func Token(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

// WithSessionID returns a context carrying the gateway session ID.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sid)
}

// SessionID returns the gateway session ID, or "" when none was assigned.
func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey).(string)
	return sid
}
