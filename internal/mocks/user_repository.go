package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/venturearena/backend/internal/model"
)

type UserRepository struct {
	mock.Mock
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := u.Called(ctx, user)
	return args.Error(0)
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := u.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
