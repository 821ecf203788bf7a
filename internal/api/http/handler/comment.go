package handler

import (
	"errors"
	"net/http"

	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/view"
)

const commentRequiredMsg = "comment, please!"

// NewComment renders the comment form on GET and creates the comment on
// POST. Any authenticated user may comment.
func (h *Handler) NewComment(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		redirect(w, r, "/login")
		return
	}

	id, idOK := pathID(r, "id")
	if !idOK {
		http.NotFound(w, r)
		return
	}

	post, err := h.content.GetPost(r.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if r.Method == http.MethodGet {
		h.renderer.Render(w, "newcomment.html", view.CommentFormPage{
			Base: base(user, ok),
			Post: post,
		})
		return
	}

	text := r.FormValue("comment")

	_, err = h.content.CreateComment(r.Context(), user, id, text)
	if errors.Is(err, model.ErrCommentRequired) {
		h.renderer.Render(w, "newcomment.html", view.CommentFormPage{
			Base:  base(user, ok),
			Post:  post,
			Error: commentRequiredMsg,
		})
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	redirect(w, r, postPath(id))
}

// EditComment edits a comment addressed through the current identity's
// scope: a comment the user did not author reads as missing and routes to
// the not-allowed notice.
func (h *Handler) EditComment(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		if r.Method == http.MethodGet {
			redirect(w, r, "/login")
		} else {
			redirect(w, r, "/")
		}
		return
	}

	id, idOK := pathID(r, "id")
	cid, cidOK := pathID(r, "cid")
	if !idOK || !cidOK {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		comment, err := h.content.GetComment(r.Context(), user, cid)
		if errors.Is(err, model.ErrNotFound) {
			redirect(w, r, "/notallowed"+KindComment)
			return
		}
		if err != nil {
			h.serverError(w, r, err)
			return
		}

		h.renderer.Render(w, "editcomment.html", view.EditCommentPage{
			Base:    base(user, ok),
			Comment: comment.Comment,
		})
		return
	}

	text := r.FormValue("comment")

	err := h.content.UpdateComment(r.Context(), user, cid, text)
	switch {
	case errors.Is(err, model.ErrCommentRequired):
		h.renderer.Render(w, "editcomment.html", view.EditCommentPage{
			Base:  base(user, ok),
			Error: commentRequiredMsg,
		})
	case errors.Is(err, model.ErrNotFound):
		redirect(w, r, "/notallowed"+KindComment)
	case err != nil:
		h.serverError(w, r, err)
	default:
		redirect(w, r, postPath(id))
	}
}

// DeleteComment confirms on GET and deletes on an explicit affirmative
// POST, scoped like EditComment.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		if r.Method == http.MethodGet {
			redirect(w, r, "/login")
		} else {
			redirect(w, r, "/")
		}
		return
	}

	_, idOK := pathID(r, "id")
	cid, cidOK := pathID(r, "cid")
	if !idOK || !cidOK {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		comment, err := h.content.GetComment(r.Context(), user, cid)
		if errors.Is(err, model.ErrNotFound) {
			redirect(w, r, "/notallowed"+KindComment)
			return
		}
		if err != nil {
			h.serverError(w, r, err)
			return
		}

		h.renderer.Render(w, "deletecomment.html", view.DeleteCommentPage{
			Base:    base(user, ok),
			Comment: comment,
		})
		return
	}

	if r.FormValue("q") != "yes" {
		redirect(w, r, "/")
		return
	}

	err := h.content.DeleteComment(r.Context(), user, cid)
	if errors.Is(err, model.ErrNotFound) {
		redirect(w, r, "/notallowed"+KindComment)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	redirect(w, r, "/deleted"+KindComment)
}
