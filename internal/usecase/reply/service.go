package reply

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kelasbackend/forum-api/domain"
)

type service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(replyRepo domain.ReplyRepository, commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		replyRepo:   replyRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
		bloomRepo:   bloomRepo,
	}
}

// mustChainExists walks thread -> comment, failing with ErrNotFound on
// the first broken link.
func (s *service) mustChainExists(ctx context.Context, threadID, commentID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, threadID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %d does not exist", threadID)
		return domain.ErrNotFound
	}
	if err := s.threadRepo.VerifyExists(ctx, threadID); err != nil {
		return err
	}

	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.ThreadID != threadID {
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, r *domain.Reply, threadID int64) error {
	if err := s.mustChainExists(ctx, threadID, r.CommentID); err != nil {
		return err
	}

	if err := s.replyRepo.Store(ctx, r); err != nil {
		return err
	}

	s.threadRepo.InvalidateDetail(ctx, threadID)
	return nil
}

func (s *service) Delete(ctx context.Context, threadID, commentID, replyID, userID int64) error {
	if err := s.mustChainExists(ctx, threadID, commentID); err != nil {
		return err
	}

	r, err := s.replyRepo.GetByID(ctx, replyID)
	if err != nil {
		return err
	}
	if r.CommentID != commentID {
		return domain.ErrNotFound
	}
	if r.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.replyRepo.SoftDelete(ctx, replyID); err != nil {
		return err
	}

	s.threadRepo.InvalidateDetail(ctx, threadID)
	return nil
}
