package models

import (
	"context"
	"sirsak-service/internal/pkg/constvars"
	"time"
)

// Session is the caller's authenticated context. Token is forwarded as a
// bearer credential on every call to the reservation API.
type Session struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Role      string    `json:"role"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == constvars.SirsakRoleAdmin
}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*Session)
	return session, ok && session != nil
}
