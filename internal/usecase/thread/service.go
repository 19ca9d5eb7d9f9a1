package thread

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/repository"
)

const bloomInitBatchSize = 1000

type Service struct {
	threadRepo domain.ThreadRepository
	userRepo   domain.UserRepository
	bloomRepo  domain.BloomRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(threadRepo domain.ThreadRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *Service {
	return &Service{
		threadRepo: threadRepo,
		userRepo:   userRepo,
		bloomRepo:  bloomRepo,
	}
}

// Store creates the thread and registers its ID in the bloom filter.
func (s *Service) Store(ctx context.Context, t *domain.Thread) error {
	if err := s.threadRepo.Store(ctx, t); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, t.ID); err != nil {
		logrus.Warnf("failed to add thread %d to bloom filter: %v", t.ID, err)
	}

	// the thread row is already persisted, a failed owner lookup only
	// costs the response its username
	owner, err := s.userRepo.GetByID(ctx, t.User.ID)
	if err != nil {
		logrus.Warnf("failed to load owner %d of thread %d: %v", t.User.ID, t.ID, err)
		return nil
	}
	t.User.Username = owner.Username
	t.User.Fullname = owner.Fullname
	return nil
}

// GetDetail serves the assembled detail view. The bloom filter rejects
// IDs that were never created without touching cache or DB.
func (s *Service) GetDetail(ctx context.Context, id int64) (domain.Thread, error) {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %d does not exist", id)
		return domain.Thread{}, domain.ErrNotFound
	}

	return s.threadRepo.GetDetail(ctx, id)
}

func (s *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, string, error) {
	res, err := s.threadRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Thread{}, "", nil
	}
	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

// InitBloomFilter walks all thread IDs into the bloom filter. Called
// once at startup.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.threadRepo.FetchIDs(ctx, cursor, bloomInitBatchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
