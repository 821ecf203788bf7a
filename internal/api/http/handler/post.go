package handler

import (
	"errors"
	"net/http"

	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/view"
)

const subjectRequiredMsg = "subject, please!"

// NewPost returns the handlers for creating a post of one essay type. The
// form only renders for the site owner; any other authenticated user is
// sent to the not-allowed notice.
func (h *Handler) NewPost(essayType model.EssayType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.currentUser(r)

		if r.Method == http.MethodGet {
			if !ok {
				redirect(w, r, "/login")
				return
			}
			if !h.allowlist.IsSiteOwner(user.Name) {
				redirect(w, r, "/notallowed"+KindPost)
				return
			}
			h.renderer.Render(w, "newpost.html", view.PostFormPage{Base: base(user, ok)})
			return
		}

		if !ok {
			redirect(w, r, "/")
			return
		}

		subject := r.FormValue("subject")
		prompt := r.FormValue("prompt")
		content := r.FormValue("content")

		post, err := h.content.CreatePost(r.Context(), user, subject, prompt, content, essayType)
		if errors.Is(err, model.ErrSubjectRequired) {
			h.renderer.Render(w, "newpost.html", view.PostFormPage{
				Base:    base(user, ok),
				Subject: subject,
				Prompt:  prompt,
				Content: content,
				Error:   subjectRequiredMsg,
			})
			return
		}
		if err != nil {
			h.serverError(w, r, err)
			return
		}

		redirect(w, r, postPath(post.ID))
	}
}

// EditPost renders the edit form on GET and applies the edit on POST. The
// edit is owner-conditional against the pre-edit owner value.
func (h *Handler) EditPost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)

	id, idOK := pathID(r, "id")
	if !idOK {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		if !ok {
			redirect(w, r, "/login")
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

		if user.Name != post.Username {
			redirect(w, r, "/notallowed"+KindPost)
			return
		}

		h.renderer.Render(w, "editpost.html", view.PostFormPage{
			Base:    base(user, ok),
			Subject: post.Subject,
			Prompt:  post.Prompt,
			Content: post.Content,
		})
		return
	}

	if !ok {
		redirect(w, r, "/")
		return
	}

	subject := r.FormValue("subject")
	prompt := r.FormValue("prompt")
	content := r.FormValue("content")

	err := h.content.UpdatePost(r.Context(), user, id, subject, prompt, content)
	switch {
	case errors.Is(err, model.ErrSubjectRequired):
		h.renderer.Render(w, "editpost.html", view.PostFormPage{
			Base:    base(user, ok),
			Subject: subject,
			Prompt:  prompt,
			Content: content,
			Error:   subjectRequiredMsg,
		})
	case errors.Is(err, model.ErrNotFound):
		redirect(w, r, "/notallowed"+KindPost)
	case err != nil:
		h.serverError(w, r, err)
	default:
		redirect(w, r, postPath(id))
	}
}

// DeletePost renders a confirmation on GET and deletes only on an explicit
// affirmative POST.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)

	id, idOK := pathID(r, "id")
	if !idOK {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		if !ok {
			redirect(w, r, "/login")
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

		if user.Name != post.Username {
			redirect(w, r, "/notallowed"+KindPost)
			return
		}

		h.renderer.Render(w, "deletepost.html", view.DeletePostPage{
			Base: base(user, ok),
			Post: post,
		})
		return
	}

	if !ok {
		redirect(w, r, "/")
		return
	}

	if r.FormValue("q") != "yes" {
		redirect(w, r, "/")
		return
	}

	err := h.content.DeletePost(r.Context(), user, id)
	if errors.Is(err, model.ErrNotFound) {
		redirect(w, r, "/notallowed"+KindPost)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	redirect(w, r, "/deleted"+KindPost)
}
