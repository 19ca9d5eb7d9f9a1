package model

import (
	"time"

	"github.com/kelasbackend/forum-api/domain"
)

type Reply struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CommentID int64     `gorm:"column:comment_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;default:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(r *domain.Reply) *Reply {
	return &Reply{
		ID:        r.ID,
		CommentID: r.CommentID,
		UserID:    r.UserID,
		Content:   r.Content,
		IsDeleted: r.IsDeleted,
		CreatedAt: r.CreatedAt,
	}
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		CommentID: m.CommentID,
		UserID:    m.UserID,
		Content:   m.Content,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
	}
}
