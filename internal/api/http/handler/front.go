package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/view"
)

// Front lists every post, newest first. Owner-only: anyone else is sent to
// the login page.
func (h *Handler) Front(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok || !h.allowlist.IsSiteOwner(user.Name) {
		redirect(w, r, "/login")
		return
	}

	posts, err := h.content.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.renderer.Render(w, "front.html", view.FrontPage{
		Base:  base(user, ok),
		Posts: posts,
	})
}

// categoryTitles maps essay types to the category page headings.
var categoryTitles = map[model.EssayType]string{
	model.EssayTypeGRE: "GRE Writings",
	model.EssayTypeNSF: "NSF Graduate Fellowship",
	model.EssayTypeSOP: "Statement of Purpose",
}

// CategoryFront returns a handler listing posts of one essay type.
func (h *Handler) CategoryFront(essayType model.EssayType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.currentUser(r)
		if !ok || !h.allowlist.IsSiteOwner(user.Name) {
			redirect(w, r, "/login")
			return
		}

		posts, err := h.content.ListPostsByType(r.Context(), essayType)
		if err != nil {
			h.serverError(w, r, err)
			return
		}

		h.renderer.Render(w, "essayfront.html", view.EssayFrontPage{
			Base:      base(user, ok),
			Title:     categoryTitles[essayType],
			EssayType: essayType,
			Posts:     posts,
		})
	}
}

// PostPage shows a single post with its comments.
func (h *Handler) PostPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok || !h.allowlist.IsSiteOwner(user.Name) {
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

	comments, err := h.content.ListComments(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.renderer.Render(w, "permalink.html", view.PermalinkPage{
		Base:     base(user, ok),
		Post:     post,
		Comments: comments,
	})
}

// Summary shows all posts grouped by category.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok || !h.allowlist.IsSiteOwner(user.Name) {
		redirect(w, r, "/login")
		return
	}

	summary, err := h.content.GetSummary(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.renderer.Render(w, "summary.html", view.SummaryPage{
		Base:    base(user, ok),
		Summary: summary,
	})
}

// postPath builds the permalink path for a post id.
func postPath(id int64) string {
	return fmt.Sprintf("/%d", id)
}
