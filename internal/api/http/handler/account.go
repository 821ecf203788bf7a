package handler

import (
	"errors"
	"net/http"

	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/view"
)

const notAllowedMsg = "You are not allowed."

// Signup renders the signup form on GET and registers on POST. Field
// validation failures re-render the form with per-field messages and no
// state change; passing validation still requires a free, allowlisted name.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)

	if r.Method == http.MethodGet {
		h.renderer.Render(w, "signup.html", view.SignupPage{Base: base(user, ok)})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	verify := r.FormValue("verify")
	email := r.FormValue("email")

	page := view.SignupPage{
		Base:     base(user, ok),
		Username: username,
		Email:    email,
	}

	haveError := false
	if !validUsername(username) {
		page.ErrorUsername = "That's not a valid username."
		haveError = true
	}
	if !validPassword(password) {
		page.ErrorPassword = "That wasn't a valid password."
		haveError = true
	} else if password != verify {
		page.ErrorVerify = "Your passwords didn't match."
		haveError = true
	}
	if !validEmail(email) {
		page.ErrorEmail = "That's not a valid email."
		haveError = true
	}

	if haveError {
		h.renderer.Render(w, "signup.html", page)
		return
	}

	registered, err := h.identity.Register(r.Context(), username, password, email)
	if errors.Is(err, model.ErrNotAllowed) || errors.Is(err, model.ErrNameTaken) {
		page.ErrorUsername = notAllowedMsg
		h.renderer.Render(w, "signup.html", page)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.sessions.Start(w, registered.ID)
	redirect(w, r, "/welcome")
}

// Login renders the login form on GET and authenticates on POST.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)

	if r.Method == http.MethodGet {
		h.renderer.Render(w, "login.html", view.LoginPage{Base: base(user, ok)})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	authenticated, err := h.identity.Authenticate(r.Context(), username, password)
	if errors.Is(err, model.ErrInvalidLogin) {
		h.renderer.Render(w, "login.html", view.LoginPage{
			Base:  base(user, ok),
			Error: "Invalid login",
		})
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.sessions.Start(w, authenticated.ID)
	redirect(w, r, "/")
}

// Logout clears the session cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.End(w)
	redirect(w, r, "/")
}

// Welcome greets the logged-in user; anonymous visitors go to signup.
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		redirect(w, r, "/signup")
		return
	}

	h.renderer.Render(w, "welcome.html", view.WelcomePage{
		Base:     base(user, ok),
		Username: user.Name,
	})
}

// NotAllowed renders the not-allowed notice for the given resource kind.
func (h *Handler) NotAllowed(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.currentUser(r)
		h.renderer.Render(w, "notallowed.html", view.NoticePage{
			Base: base(user, ok),
			Kind: kindLabel(kind),
		})
	}
}

// Deleted renders the post-deletion notice for the given resource kind.
func (h *Handler) Deleted(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.currentUser(r)
		h.renderer.Render(w, "deleted.html", view.NoticePage{
			Base: base(user, ok),
			Kind: kindLabel(kind),
		})
	}
}
