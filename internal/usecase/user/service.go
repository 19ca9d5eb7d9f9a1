package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/kelasbackend/forum-api/domain"
)

type Service struct {
	userRepo domain.UserRepository
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(userRepo domain.UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// Register hashes the password and inserts the account.
// The username must be available, otherwise ErrConflict.
func (s *Service) Register(ctx context.Context, u *domain.User) error {
	_, err := s.userRepo.GetByUsername(ctx, u.Username)
	if err == nil {
		return domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)

	return s.userRepo.Insert(ctx, u)
}
