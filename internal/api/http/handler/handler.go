// Package handler contains the HTTP request handlers. Each handler resolves
// the request identity, applies the authorization policy, performs at most
// one content or identity operation and renders through the view.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/wonjunee/essayblog/internal/auth"
	"github.com/wonjunee/essayblog/internal/logger"
	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/service"
	"github.com/wonjunee/essayblog/internal/session"
	"github.com/wonjunee/essayblog/internal/view"
)

// IdentityService defines registration and login operations.
type IdentityService interface {
	Register(ctx context.Context, name, password, email string) (model.User, error)
	Authenticate(ctx context.Context, name, password string) (model.User, error)
}

// ContentService defines post and comment lifecycle operations.
type ContentService interface {
	CreatePost(ctx context.Context, owner model.User, subject, prompt, content string, essayType model.EssayType) (model.Post, error)
	GetPost(ctx context.Context, id int64) (model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListPostsByType(ctx context.Context, essayType model.EssayType) ([]model.Post, error)
	GetSummary(ctx context.Context) (service.Summary, error)
	UpdatePost(ctx context.Context, owner model.User, id int64, subject, prompt, content string) error
	DeletePost(ctx context.Context, owner model.User, id int64) error
	CreateComment(ctx context.Context, owner model.User, postID int64, text string) (model.Comment, error)
	GetComment(ctx context.Context, owner model.User, id int64) (model.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
	UpdateComment(ctx context.Context, owner model.User, id int64, text string) error
	DeleteComment(ctx context.Context, owner model.User, id int64) error
}

// SessionManager issues and clears session cookies.
type SessionManager interface {
	Start(w http.ResponseWriter, userID int64)
	End(w http.ResponseWriter)
}

// Resource kinds used by the notallowed/deleted notice routes.
const (
	KindPost    = "0"
	KindComment = "1"
)

func kindLabel(kind string) string {
	if kind == KindPost {
		return "Post"
	}
	return "Comment"
}

// Handler holds the collaborators shared by all routes.
type Handler struct {
	identity  IdentityService
	content   ContentService
	sessions  SessionManager
	allowlist auth.Allowlist
	renderer  *view.Renderer
	logger    *logger.Logger
}

// New creates a new Handler.
func New(
	identity IdentityService,
	content ContentService,
	sessions SessionManager,
	allowlist auth.Allowlist,
	renderer *view.Renderer,
	logger *logger.Logger,
) *Handler {
	return &Handler{
		identity:  identity,
		content:   content,
		sessions:  sessions,
		allowlist: allowlist,
		renderer:  renderer,
		logger:    logger,
	}
}

// currentUser returns the identity resolved by the middleware, if any.
func (h *Handler) currentUser(r *http.Request) (model.User, bool) {
	return session.UserFromContext(r.Context())
}

// base builds the shared page fields for the given identity.
func base(user model.User, ok bool) view.Base {
	if !ok {
		return view.Base{}
	}
	return view.Base{User: &user}
}

// pathID parses a numeric path segment; false means the route should 404.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("handler: request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}
