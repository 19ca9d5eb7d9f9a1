package domain

import (
	"context"
	"time"
)

// Reply is a second-level comment attached to a Comment.
type Reply struct {
	ID        int64     `json:"id"`
	CommentID int64     `json:"comment_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`

	// Username 回复作者用户名
	Username string `json:"username,omitempty"`
}

type ReplyUsecase interface {
	// Create adds a reply under a comment of a thread.
	// Returns ErrNotFound when the thread/comment chain is broken.
	Create(ctx context.Context, r *Reply, threadID int64) error

	// Delete soft-deletes a reply owned by userID.
	// Returns ErrForbidden if the actor is not the owner.
	Delete(ctx context.Context, threadID, commentID, replyID, userID int64) error
}

type ReplyRepository interface {
	Store(ctx context.Context, r *Reply) error

	// GetByID returns the reply regardless of its soft-delete flag.
	GetByID(ctx context.Context, id int64) (*Reply, error)

	SoftDelete(ctx context.Context, id int64) error

	// FetchByComments lists all replies of the given comments in
	// chronological order.
	FetchByComments(ctx context.Context, commentIDs []int64) ([]*Reply, error)
}
