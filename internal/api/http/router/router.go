// Package router maps the route table onto handlers and chains the shared
// middleware.
package router

import (
	"net/http"

	"github.com/wonjunee/essayblog/internal/api/http/handler"
	"github.com/wonjunee/essayblog/internal/api/http/middleware"
	"github.com/wonjunee/essayblog/internal/logger"
	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/session"
)

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	handler  *handler.Handler
	sessions *session.Manager
	logger   *logger.Logger
}

// New creates new Router instance.
func New(h *handler.Handler, sessions *session.Manager, logger *logger.Logger) *Router {
	return &Router{
		handler:  h,
		sessions: sessions,
		logger:   logger,
	}
}

// Register builds the route table and returns the root handler, wrapped
// with identity resolution and request logging.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()
	h := r.handler

	mux.HandleFunc("GET /{$}", h.Front)
	mux.HandleFunc("GET /gre", h.CategoryFront(model.EssayTypeGRE))
	mux.HandleFunc("GET /nsf", h.CategoryFront(model.EssayTypeNSF))
	mux.HandleFunc("GET /sop", h.CategoryFront(model.EssayTypeSOP))
	mux.HandleFunc("GET /summary", h.Summary)

	for _, t := range []model.EssayType{model.EssayTypeGRE, model.EssayTypeNSF, model.EssayTypeSOP} {
		mux.Handle("GET /newpost"+string(t), h.NewPost(t))
		mux.Handle("POST /newpost"+string(t), h.NewPost(t))
	}

	mux.HandleFunc("GET /signup", h.Signup)
	mux.HandleFunc("POST /signup", h.Signup)
	mux.HandleFunc("GET /login", h.Login)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /logout", h.Logout)
	mux.HandleFunc("GET /welcome", h.Welcome)

	for _, kind := range []string{handler.KindPost, handler.KindComment} {
		mux.Handle("GET /notallowed"+kind, h.NotAllowed(kind))
		mux.Handle("GET /deleted"+kind, h.Deleted(kind))
	}

	mux.HandleFunc("GET /{id}", h.PostPage)
	mux.HandleFunc("GET /{id}/edit", h.EditPost)
	mux.HandleFunc("POST /{id}/edit", h.EditPost)
	mux.HandleFunc("GET /{id}/delete", h.DeletePost)
	mux.HandleFunc("POST /{id}/delete", h.DeletePost)
	mux.HandleFunc("GET /{id}/comment", h.NewComment)
	mux.HandleFunc("POST /{id}/comment", h.NewComment)
	mux.HandleFunc("GET /{id}/comment/{cid}/edit", h.EditComment)
	mux.HandleFunc("POST /{id}/comment/{cid}/edit", h.EditComment)
	mux.HandleFunc("GET /{id}/comment/{cid}/delete", h.DeleteComment)
	mux.HandleFunc("POST /{id}/comment/{cid}/delete", h.DeleteComment)

	logging := middleware.NewLogging(r.logger)
	identity := middleware.NewIdentity(r.sessions)

	return logging.Handle(identity.Handle(mux))
}
