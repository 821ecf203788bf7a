// Package session reads and writes the signed session cookie and resolves
// the authenticated identity for a request.
package session

import (
	"context"
	"net/http"
	"strconv"

	"github.com/wonjunee/essayblog/internal/auth"
	"github.com/wonjunee/essayblog/internal/model"
)

// Manager issues and resolves session cookies. The cookie value is the
// user's numeric id signed with the process-wide secret; it is a session
// cookie with no explicit expiry.
type Manager struct {
	users      model.UserStore
	secret     string
	cookieName string
}

// NewManager creates a Manager over the given user store.
func NewManager(users model.UserStore, secret, cookieName string) *Manager {
	return &Manager{
		users:      users,
		secret:     secret,
		cookieName: cookieName,
	}
}

// Start sets the session cookie for the given user id.
func (m *Manager) Start(w http.ResponseWriter, userID int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    auth.SignValue(m.secret, strconv.FormatInt(userID, 10)),
		Path:     "/",
		HttpOnly: true,
	})
}

// End clears the session cookie.
func (m *Manager) End(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Resolve returns the user named by the request's session cookie. A missing
// cookie, a bad signature, a malformed id or an unknown user all resolve to
// no identity, never to an error.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (model.User, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return model.User{}, false
	}

	value, ok := auth.VerifyValue(m.secret, cookie.Value)
	if !ok {
		return model.User{}, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return model.User{}, false
	}

	user, err := m.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, false
	}

	return user, true
}
