package like

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kelasbackend/forum-api/domain"
)

type service struct {
	likeRepo    domain.CommentLikeRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	bloomRepo   domain.BloomRepository
	cache       domain.ThreadCache
	syncWorker  domain.SyncLikesWorker
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(
	likeRepo domain.CommentLikeRepository,
	commentRepo domain.CommentRepository,
	threadRepo domain.ThreadRepository,
	bloomRepo domain.BloomRepository,
	cache domain.ThreadCache,
	syncWorker domain.SyncLikesWorker,
) *service {
	return &service{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
		bloomRepo:   bloomRepo,
		cache:       cache,
		syncWorker:  syncWorker,
	}
}

// Toggle flips the like row in the database, nudges the cached counter
// and queues a reconciliation task. The unique (comment_id, user_id)
// key makes a double toggle land back on the original state.
func (s *service) Toggle(ctx context.Context, like domain.CommentLike) (bool, error) {
	exists, err := s.bloomRepo.Exists(ctx, like.ThreadID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %d does not exist", like.ThreadID)
		return false, domain.ErrNotFound
	}
	if err := s.threadRepo.VerifyExists(ctx, like.ThreadID); err != nil {
		return false, err
	}

	c, err := s.commentRepo.GetByID(ctx, like.CommentID)
	if err != nil {
		return false, err
	}
	if c.ThreadID != like.ThreadID {
		return false, domain.ErrNotFound
	}

	liked, err := s.likeRepo.Toggle(ctx, like.CommentID, like.UserID)
	if err != nil {
		return false, err
	}

	action := domain.Unlike
	if liked {
		action = domain.Like
		if err := s.cache.IncrLikeCount(ctx, like.CommentID); err != nil {
			logrus.Warnf("failed to incr like counter for comment %d: %v", like.CommentID, err)
		}
	} else {
		if err := s.cache.DecrLikeCount(ctx, like.CommentID); err != nil {
			logrus.Warnf("failed to decr like counter for comment %d: %v", like.CommentID, err)
		}
	}

	s.syncWorker.Send(like, action)
	return liked, nil
}
