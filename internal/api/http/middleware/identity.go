package middleware

import (
	"net/http"

	"github.com/wonjunee/essayblog/internal/session"
)

// Identity resolves the session cookie into an identity and stores it in
// the request context. It never rejects a request; handlers decide what an
// absent identity means for their route.
type Identity struct {
	sessions *session.Manager
}

// NewIdentity creates a new Identity middleware.
func NewIdentity(sessions *session.Manager) *Identity {
	return &Identity{sessions: sessions}
}

// Handle wraps next with identity resolution.
func (m *Identity) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := m.sessions.Resolve(r.Context(), r); ok {
			r = r.WithContext(session.WithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}
