package mysql

import (
	"context"
	"errors"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type authenticationRepository struct {
	DB *gorm.DB
}

var _ domain.AuthenticationRepository = (*authenticationRepository)(nil)

func NewAuthenticationRepository(db *gorm.DB) *authenticationRepository {
	return &authenticationRepository{
		DB: db,
	}
}

func (m *authenticationRepository) Store(ctx context.Context, token string) error {
	return m.DB.WithContext(ctx).Create(&model.Authentication{Token: token}).Error
}

func (m *authenticationRepository) VerifyExists(ctx context.Context, token string) error {
	var auth model.Authentication
	err := m.DB.WithContext(ctx).First(&auth, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBadParamInput
		}
		return err
	}
	return nil
}

func (m *authenticationRepository) Delete(ctx context.Context, token string) error {
	result := m.DB.WithContext(ctx).Where("token = ?", token).Delete(&model.Authentication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBadParamInput
	}
	return nil
}
