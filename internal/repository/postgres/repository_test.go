package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewPostRepository(t *testing.T) {
	db := &Connection{}
	repo := NewPostRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewCommentRepository(t *testing.T) {
	db := &Connection{}
	repo := NewCommentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
