package model

import (
	"time"

	"github.com/kelasbackend/forum-api/domain"
)

type Thread struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(150);not null"`
	Body      string    `gorm:"type:text;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Thread) TableName() string {
	return "threads"
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:    m.ID,
		Title: m.Title,
		Body:  m.Body,
		User: domain.User{
			ID: m.UserID,
		},
		CreatedAt: m.CreatedAt,
	}
}

func NewThreadFromDomain(t *domain.Thread) *Thread {
	return &Thread{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		UserID:    t.User.ID,
		CreatedAt: t.CreatedAt,
	}
}
