package mysql

import (
	"context"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentLikeRepository struct {
	DB *gorm.DB
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB) *commentLikeRepository {
	return &commentLikeRepository{
		DB: db,
	}
}

// Toggle removes the (comment, user) row when present and inserts it
// otherwise. Concurrent inserts race on the unique (comment_id, user_id)
// key; the loser surfaces domain.ErrConflict.
func (m *commentLikeRepository) Toggle(ctx context.Context, commentID, userID int64) (bool, error) {
	liked := false
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&model.CommentLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		userLike := model.NewCommentLikeFromDomain(domain.CommentLike{
			CommentID: commentID,
			UserID:    userID,
		})
		if err := tx.Create(&userLike).Error; err != nil {
			return domain.ErrConflict
		}
		liked = true
		return nil
	})
	return liked, err
}

func (m *commentLikeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

func (m *commentLikeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	res := make(map[int64]int64)
	if len(commentIDs) == 0 {
		return res, nil
	}

	type likeCount struct {
		CommentID int64
		Cnt       int64
	}
	var rows []likeCount
	err := m.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Select("comment_id, count(*) as cnt").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		res[row.CommentID] = row.Cnt
	}
	return res, nil
}
