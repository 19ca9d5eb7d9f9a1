package domain

import "context"

type LikeAction int8

const (
	Like   LikeAction = 1
	Unlike LikeAction = -1
)

func (l LikeAction) String() string {
	switch l {
	case Like:
		return "ADD"
	case Unlike:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// SyncLikesWorker reconciles cached like counters with the comment_likes
// table in the background.
type SyncLikesWorker interface {
	Start(ctx context.Context)

	// Send queues a toggle event. action == Like means the row was
	// added, action == Unlike means it was removed.
	Send(likeRecord CommentLike, action LikeAction)
}
