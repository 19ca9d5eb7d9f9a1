package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kelasbackend/forum-api/domain"
)

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.TokenPair), args.Error(1)
}

func (m *AuthUsecase) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

type ThreadUsecase struct {
	mock.Mock
}

func (m *ThreadUsecase) Store(ctx context.Context, t *domain.Thread) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *ThreadUsecase) GetDetail(ctx context.Context, id int64) (domain.Thread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadUsecase) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, string, error) {
	args := m.Called(ctx, cursor, num)
	res, _ := args.Get(0).([]domain.Thread)
	return res, args.String(1), args.Error(2)
}

func (m *ThreadUsecase) InitBloomFilter(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
