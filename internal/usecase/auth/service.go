package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/kelasbackend/forum-api/domain"
)

type Service struct {
	userRepo domain.UserRepository
	authRepo domain.AuthenticationRepository
	tokens   domain.TokenManager
}

var _ domain.AuthUsecase = (*Service)(nil)

// NewService will create a new authentication service object
func NewService(userRepo domain.UserRepository, authRepo domain.AuthenticationRepository, tokens domain.TokenManager) *Service {
	return &Service{
		userRepo: userRepo,
		authRepo: authRepo,
		tokens:   tokens,
	}
}

// Login verifies the credentials and persists the issued refresh token.
// Unknown usernames and wrong passwords both map to ErrUnauthorized so
// the response does not reveal which one failed.
func (s *Service) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.TokenPair{}, domain.ErrUnauthorized
		}
		return domain.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return domain.TokenPair{}, domain.ErrUnauthorized
	}

	accessToken, err := s.tokens.GenerateAccessToken(u)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(u)
	if err != nil {
		return domain.TokenPair{}, err
	}

	if err := s.authRepo.Store(ctx, refreshToken); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshAccessToken mints a new access token for a refresh token that
// is both valid and still registered.
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	u, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	if err := s.authRepo.VerifyExists(ctx, refreshToken); err != nil {
		return "", err
	}

	return s.tokens.GenerateAccessToken(u)
}

// Logout revokes the refresh token. Unregistered tokens fail with
// ErrBadParamInput.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if err := s.authRepo.VerifyExists(ctx, refreshToken); err != nil {
		return err
	}
	return s.authRepo.Delete(ctx, refreshToken)
}
