package domain

import (
	"context"
	"time"
)

// CommentLike is representing a like record on a comment.
// ThreadID is carried along so cache invalidation can reach the owning
// thread without an extra lookup.
type CommentLike struct {
	ThreadID  int64
	CommentID int64
	UserID    int64
	CreatedAt time.Time
}

type CommentLikeRepository interface {
	// Toggle inserts the (comment, user) row if absent and deletes it if
	// present, in one transaction. Returns true when the comment ends up
	// liked. A concurrent duplicate insert surfaces as ErrConflict.
	Toggle(ctx context.Context, commentID, userID int64) (bool, error)

	// CountByComment returns the current like count of one comment.
	CountByComment(ctx context.Context, commentID int64) (int64, error)

	// CountByComments returns like counts for many comments at once.
	// Comments with no likes are absent from the map.
	CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error)
}

type LikeUsecase interface {
	// Toggle flips the like state for like.UserID on like.CommentID.
	// Returns true when the comment ends up liked.
	Toggle(ctx context.Context, like CommentLike) (bool, error)
}
