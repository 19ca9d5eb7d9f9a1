package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64     `json:"id"`
	ThreadID  int64     `json:"thread_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`

	// Username 评论作者用户名
	Username string `json:"username,omitempty"`
	// LikeCount 点赞数
	LikeCount int64 `json:"like_count"`
	// Replies 子回复列表
	Replies []*Reply `json:"replies,omitempty"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create adds a comment to an existing thread.
	// Returns ErrNotFound if the thread doesn't exist.
	Create(ctx context.Context, c *Comment) error

	// Delete soft-deletes a comment owned by userID.
	// Returns ErrNotFound if the thread/comment chain is broken and
	// ErrForbidden if the actor is not the owner.
	Delete(ctx context.Context, threadID, commentID, userID int64) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store creates the comment and backfills ID and CreatedAt.
	Store(ctx context.Context, c *Comment) error

	// GetByID returns the comment regardless of its soft-delete flag.
	// Returns ErrNotFound if the row doesn't exist.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// SoftDelete flips the is_deleted flag, keeping the row for
	// replies and likes. Returns ErrNotFound on missing rows.
	SoftDelete(ctx context.Context, id int64) error

	// FetchByThread lists all comments of a thread in chronological
	// order, soft-deleted ones included.
	FetchByThread(ctx context.Context, threadID int64) ([]*Comment, error)
}
