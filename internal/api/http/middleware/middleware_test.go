package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wonjunee/essayblog/internal/auth"
	"github.com/wonjunee/essayblog/internal/mocks"
	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/session"
	"github.com/wonjunee/essayblog/internal/testutil"
)

func TestIdentity_ResolvesUserIntoContext(t *testing.T) {
	users := &mocks.UserStore{}
	users.On("GetByID", mock.Anything, int64(7)).Return(model.User{ID: 7, Name: "wonjunee"}, nil)
	sessions := session.NewManager(users, "secret", "user_id")

	var got model.User
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = session.UserFromContext(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "user_id", Value: auth.SignValue("secret", strconv.FormatInt(7, 10))})

	NewIdentity(sessions).Handle(next).ServeHTTP(httptest.NewRecorder(), r)

	require.True(t, ok)
	assert.Equal(t, "wonjunee", got.Name)
}

func TestIdentity_AnonymousPassesThrough(t *testing.T) {
	sessions := session.NewManager(&mocks.UserStore{}, "secret", "user_id")

	var ok bool
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok = session.UserFromContext(r.Context())
	})

	NewIdentity(sessions).Handle(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.False(t, ok)
}

func TestLogging_PreservesStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	NewLogging(testutil.MakeNoopLogger()).Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
