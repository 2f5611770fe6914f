package session

import (
	"context"
	"time"

	"ClinicaAdmin/models"
)

// SessionExpiry bounds how long an operator session lives in the store. It
// matches the console token expiry.
const SessionExpiry = 24 * time.Hour

// Session holds the backend bearer token and the authenticated user for one
// console operator. Login and logout are the only writers; everything else
// reads the session through the request context.
type Session struct {
	ID    string      `json:"id"`
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type contextKey string

const sessionKey contextKey = "session"

// NewContext returns a context carrying the given session.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext retrieves the session from the context, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*Session)
	return sess, ok && sess != nil
}

// TokenFromContext returns the backend bearer token for the current request,
// or the empty string when the request is unauthenticated (login only).
func TokenFromContext(ctx context.Context) string {
	if sess, ok := FromContext(ctx); ok {
		return sess.Token
	}
	return ""
}
