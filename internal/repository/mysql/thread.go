package mysql

import (
	"context"
	"errors"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/repository"
	"github.com/kelasbackend/forum-api/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type threadRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.ThreadDBRepository = (*threadRepository)(nil)

// NewThreadDBRepository 创建数据库操作层
func NewThreadDBRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{db}
}

func (m *threadRepository) Store(ctx context.Context, t *domain.Thread) error {
	threadModel := model.NewThreadFromDomain(t)
	result := m.DB.WithContext(ctx).Create(&threadModel)
	if result.Error != nil {
		return result.Error
	}
	t.ID = threadModel.ID
	t.CreatedAt = threadModel.CreatedAt
	return nil
}

func (m *threadRepository) GetByID(ctx context.Context, id int64) (res domain.Thread, err error) {
	var thread model.Thread
	err = m.DB.WithContext(ctx).First(&thread, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = thread.ToDomain()
	return
}

func (m *threadRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Thread, err error) {
	var threads []model.Thread
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).Select("id, title, user_id, created_at").
		Where("created_at > ?", decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&threads).
		Error

	if err != nil {
		return
	}

	for _, thread := range threads {
		res = append(res, thread.ToDomain())
	}

	return
}

func (m *threadRepository) VerifyExists(ctx context.Context, id int64) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *threadRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return
}
