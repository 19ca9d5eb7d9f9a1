package mysql

import (
	"context"
	"errors"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (r *replyRepository) Store(ctx context.Context, reply *domain.Reply) error {
	replyModel := model.NewReplyFromDomain(reply)
	err := r.DB.WithContext(ctx).Create(replyModel).Error
	if err != nil {
		return err
	}
	reply.ID = replyModel.ID
	reply.CreatedAt = replyModel.CreatedAt
	return nil
}

func (r *replyRepository) GetByID(ctx context.Context, id int64) (*domain.Reply, error) {
	var reply model.Reply
	err := r.DB.WithContext(ctx).First(&reply, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	domainReply := reply.ToDomain()
	return &domainReply, nil
}

func (r *replyRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *replyRepository) FetchByComments(ctx context.Context, commentIDs []int64) ([]*domain.Reply, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}

	var replies []model.Reply
	err := r.DB.WithContext(ctx).
		Where("comment_id IN ?", commentIDs).
		Order("created_at").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Reply, 0, len(replies))
	for _, reply := range replies {
		domainReply := reply.ToDomain()
		res = append(res, &domainReply)
	}
	return res, nil
}
