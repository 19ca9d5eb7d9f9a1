package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kelasbackend/forum-api/domain"
)

type LikeTask struct {
	ThreadID  int64
	CommentID int64
	UserID    int64
	Action    domain.LikeAction
}

// syncLikesWorker batches like toggles and reconciles the cached
// counters with the real row counts in comment_likes.
type syncLikesWorker struct {
	LikeRepo domain.CommentLikeRepository
	Cache    domain.ThreadCache
	ch       chan LikeTask
}

var _ domain.SyncLikesWorker = (*syncLikesWorker)(nil)

func NewSyncLikesWorker(likeRepo domain.CommentLikeRepository, cache domain.ThreadCache) *syncLikesWorker {
	return &syncLikesWorker{
		LikeRepo: likeRepo,
		Cache:    cache,
		ch:       make(chan LikeTask, 1024),
	}
}

// Send queues a toggle event. A full channel drops the task, the next
// reconciliation of the same comment repairs the counter anyway.
func (s syncLikesWorker) Send(likeRecord domain.CommentLike, action domain.LikeAction) {
	select {
	case s.ch <- LikeTask{likeRecord.ThreadID, likeRecord.CommentID, likeRecord.UserID, action}:
	default:
		logrus.Info("SyncLikesWorker's channel is full, task dropped")
	}
}

func (s syncLikesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]LikeTask, 0, batchSize)
	for {
		select {
		case task := <-s.ch:
			batch = append(batch, task)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]LikeTask, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]LikeTask, 0)
		case <-ctx.Done():
			logrus.Info("shutting down SyncLikesWorker, flushing remaining tasks...")
			// 清空channel里尚未取出的任务再做最后一次flush
			for {
				select {
				case task := <-s.ch:
					batch = append(batch, task)
				default:
					s.flush(context.Background(), batch)
					return
				}
			}
		}
	}
}

func (s syncLikesWorker) flush(ctx context.Context, batch []LikeTask) {
	if len(batch) == 0 {
		return
	}

	// dedupe to one reconciliation per comment and one invalidation
	// per thread
	comments := make(map[int64]struct{})
	threads := make(map[int64]struct{})
	for i := range batch {
		comments[batch[i].CommentID] = struct{}{}
		threads[batch[i].ThreadID] = struct{}{}
	}

	for commentID := range comments {
		count, err := s.LikeRepo.CountByComment(ctx, commentID)
		if err != nil {
			logrus.Errorf("failed to count likes for comment %d: %v", commentID, err)
			continue
		}
		if err := s.Cache.SetLikeCount(ctx, commentID, count); err != nil {
			logrus.Warnf("failed to set like counter for comment %d: %v", commentID, err)
		}
	}

	for threadID := range threads {
		if err := s.Cache.DeleteDetail(ctx, threadID); err != nil {
			logrus.Warnf("failed to invalidate thread detail %d: %v", threadID, err)
		}
	}
}
