package user_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/domain/mocks"
	ucase "github.com/kelasbackend/forum-api/internal/usecase/user"
)

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "dicoding").
			Return(domain.User{}, domain.ErrNotFound).Once()
		mockUserRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*domain.User)
				u.ID = 1
			}).
			Return(nil).Once()

		u := domain.User{
			Username: "dicoding",
			Password: "secret123",
			Fullname: faker.Name(),
		}

		svc := ucase.NewService(mockUserRepo)
		err := svc.Register(context.Background(), &u)

		require.NoError(t, err)
		assert.EqualValues(t, 1, u.ID)
		// stored password must be the bcrypt hash, not the plaintext
		assert.NotEqual(t, "secret123", u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "dicoding").
			Return(domain.User{ID: 7, Username: "dicoding"}, nil).Once()

		u := domain.User{
			Username: "dicoding",
			Password: "secret123",
			Fullname: faker.Name(),
		}

		svc := ucase.NewService(mockUserRepo)
		err := svc.Register(context.Background(), &u)

		assert.ErrorIs(t, err, domain.ErrConflict)
		mockUserRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		mockUserRepo.AssertExpectations(t)
	})
}
