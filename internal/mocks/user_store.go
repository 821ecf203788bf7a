// Package mocks provides testify mocks for the model store interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wonjunee/essayblog/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByName(ctx context.Context, name string) (model.User, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}
