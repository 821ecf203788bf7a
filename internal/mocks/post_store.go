package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wonjunee/essayblog/internal/model"
)

// PostStore is a mock implementation of model.PostStore.
type PostStore struct {
	mock.Mock
}

func (m *PostStore) Create(ctx context.Context, post model.Post) (model.Post, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *PostStore) GetByID(ctx context.Context, id int64) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *PostStore) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *PostStore) ListByType(ctx context.Context, essayType model.EssayType) ([]model.Post, error) {
	args := m.Called(ctx, essayType)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *PostStore) UpdateOwned(ctx context.Context, post model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *PostStore) DeleteOwned(ctx context.Context, id int64, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}
