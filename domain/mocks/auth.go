package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kelasbackend/forum-api/domain"
)

type AuthenticationRepository struct {
	mock.Mock
}

func (m *AuthenticationRepository) Store(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AuthenticationRepository) VerifyExists(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AuthenticationRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateAccessToken(u domain.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) GenerateRefreshToken(u domain.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) VerifyRefreshToken(token string) (domain.User, error) {
	args := m.Called(token)
	return args.Get(0).(domain.User), args.Error(1)
}
