package model

import (
	"context"
	"strings"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	List(ctx context.Context) ([]Post, error)
	ListByType(ctx context.Context, essayType EssayType) ([]Post, error)
	// UpdateOwned updates a post only when it is owned by post.Username.
	// Returns ErrNotFound when no matching row exists.
	UpdateOwned(ctx context.Context, post Post) error
	// DeleteOwned deletes a post only when it is owned by username.
	// Returns ErrNotFound when no matching row exists.
	DeleteOwned(ctx context.Context, id int64, username string) error
}

// EssayType enumerates post categories, stored as single-digit codes.
type EssayType string

const (
	EssayTypeGRE EssayType = "0"
	EssayTypeNSF EssayType = "1"
	EssayTypeSOP EssayType = "2"
)

// essayTypeLabels maps category codes to display labels.
var essayTypeLabels = map[EssayType]string{
	EssayTypeGRE: "GRE",
	EssayTypeNSF: "NSF",
	EssayTypeSOP: "SOP",
}

// ParseEssayType validates a category code from a route segment.
func ParseEssayType(s string) (EssayType, bool) {
	t := EssayType(s)
	_, ok := essayTypeLabels[t]
	return t, ok
}

// Label returns the display label for the essay type.
func (t EssayType) Label() string {
	return essayTypeLabels[t]
}

// Post represents an essay. Username is a denormalized copy of the owner's
// name used by the edit/delete authorization checks; UserID is the
// schema-enforced owner reference.
type Post struct {
	ID        int64
	Subject   string
	Prompt    string
	Content   string
	EssayType EssayType
	Username  string
	UserID    int64
	CreatedAt time.Time
}

// WordCount reports the number of space-separated words in the content.
func (p Post) WordCount() int {
	return len(strings.Split(p.Content, " "))
}
