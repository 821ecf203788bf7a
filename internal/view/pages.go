package view

import (
	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/service"
)

// Base carries the fields every page shares. User is nil for anonymous
// visitors; the layout uses it to switch between login/signup and logout
// links.
type Base struct {
	User *model.User
}

// FrontPage lists all posts on the front page.
type FrontPage struct {
	Base
	Posts []model.Post
}

// EssayFrontPage lists posts of one category.
type EssayFrontPage struct {
	Base
	Title     string
	EssayType model.EssayType
	Posts     []model.Post
}

// PermalinkPage shows a single post with its comments.
type PermalinkPage struct {
	Base
	Post     model.Post
	Comments []model.Comment
}

// PostFormPage backs both the new-post and edit-post forms.
type PostFormPage struct {
	Base
	Subject string
	Prompt  string
	Content string
	Error   string
}

// DeletePostPage is the delete-post confirmation view.
type DeletePostPage struct {
	Base
	Post model.Post
}

// CommentFormPage backs the new-comment form.
type CommentFormPage struct {
	Base
	Post    model.Post
	Comment string
	Error   string
}

// EditCommentPage backs the edit-comment form.
type EditCommentPage struct {
	Base
	Comment string
	Error   string
}

// DeleteCommentPage is the delete-comment confirmation view.
type DeleteCommentPage struct {
	Base
	Comment model.Comment
}

// SignupPage backs the signup form. Field errors re-render alongside the
// echoed username and email; passwords are never echoed.
type SignupPage struct {
	Base
	Username      string
	Email         string
	ErrorUsername string
	ErrorPassword string
	ErrorVerify   string
	ErrorEmail    string
}

// LoginPage backs the login form.
type LoginPage struct {
	Base
	Error string
}

// WelcomePage greets a freshly signed-up or logged-in user.
type WelcomePage struct {
	Base
	Username string
}

// NoticePage backs the "not allowed" and "deleted" notices. Kind is the
// resource label, "Post" or "Comment".
type NoticePage struct {
	Base
	Kind string
}

// SummaryPage shows all posts grouped by category.
type SummaryPage struct {
	Base
	Summary service.Summary
}
