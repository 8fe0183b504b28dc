package ports

import (
	"context"

	"github.com/SSebia/adsite-cli/internal/domain"
)

// Session is the persisted login state: the bearer token and the user it
// belongs to. Token lifecycle (issuing, refresh) is the backend's business.
type Session struct {
	Token string
	User  domain.User
}

// SessionProvider supplies the current session to the gateway and the
// comment workflow.
type SessionProvider interface {
	Token(ctx context.Context) (string, error)
	CurrentUser(ctx context.Context) (domain.User, error)
}

// SessionStore additionally persists and clears sessions (login/logout).
type SessionStore interface {
	SessionProvider
	Save(ctx context.Context, session Session) error
	Clear(ctx context.Context) error
}
