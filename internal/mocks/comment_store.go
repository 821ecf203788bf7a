package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wonjunee/essayblog/internal/model"
)

// CommentStore is a mock implementation of model.CommentStore.
type CommentStore struct {
	mock.Mock
}

func (m *CommentStore) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *CommentStore) GetOwned(ctx context.Context, id int64, username string) (model.Comment, error) {
	args := m.Called(ctx, id, username)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *CommentStore) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *CommentStore) UpdateOwned(ctx context.Context, id int64, username, text string) error {
	args := m.Called(ctx, id, username, text)
	return args.Error(0)
}

func (m *CommentStore) DeleteOwned(ctx context.Context, id int64, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}
