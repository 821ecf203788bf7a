package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByName(ctx context.Context, name string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a registered user. PasswordHash carries the
// "salt,digest" pair produced by the credential codec. Users are created
// once at registration and never updated or deleted.
type User struct {
	ID           int64
	Name         string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}
