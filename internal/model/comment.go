package model

import (
	"context"
	"time"
)

// CommentStore defines persistence operations for comments.
//
// Lookup, update and delete are scoped by the comment owner's name: a
// comment is addressable only by the user who authored it. A comment owned
// by someone else is reported as ErrNotFound, never as a distinct
// forbidden state.
type CommentStore interface {
	Create(ctx context.Context, comment Comment) (Comment, error)
	GetOwned(ctx context.Context, id int64, username string) (Comment, error)
	ListByPost(ctx context.Context, postID string) ([]Comment, error)
	UpdateOwned(ctx context.Context, id int64, username, text string) error
	DeleteOwned(ctx context.Context, id int64, username string) error
}

// Comment represents a comment on a post. PostID is stored as text, a soft
// reference to the post's identifier.
type Comment struct {
	ID        int64
	PostID    string
	Comment   string
	Username  string
	UserID    int64
	CreatedAt time.Time
}
