package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kelasbackend/forum-api/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
		bloomRepo:   bloomRepo,
	}
}

// mustThreadExists rejects IDs the bloom filter has never seen, then
// confirms against the database.
func (s *service) mustThreadExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %d does not exist", id)
		return domain.ErrNotFound
	}

	return s.threadRepo.VerifyExists(ctx, id)
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if err := s.mustThreadExists(ctx, c.ThreadID); err != nil {
		return err
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	s.threadRepo.InvalidateDetail(ctx, c.ThreadID)
	return nil
}

func (s *service) Delete(ctx context.Context, threadID, commentID, userID int64) error {
	if err := s.mustThreadExists(ctx, threadID); err != nil {
		return err
	}

	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.ThreadID != threadID {
		return domain.ErrNotFound
	}
	if c.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.commentRepo.SoftDelete(ctx, commentID); err != nil {
		return err
	}

	s.threadRepo.InvalidateDetail(ctx, threadID)
	return nil
}
