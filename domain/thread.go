package domain

import (
	"context"
	"time"
)

// Thread is representing the Thread data struct
type Thread struct {
	ID        int64     // Unique identifier for the thread
	Title     string    // Thread title
	Body      string    // Thread body content
	User      User      // Owner information
	CreatedAt time.Time // Creation timestamp

	// Comments holds the nested comment tree. Only populated on
	// detail reads.
	Comments []*Comment
}

// ThreadDBRepository defines the database-only contract for threads.
type ThreadDBRepository interface {
	// Store creates a new thread and backfills its ID and timestamps.
	Store(ctx context.Context, t *Thread) error

	// GetByID retrieves a single thread by its ID.
	// Returns ErrNotFound if the thread doesn't exist.
	GetByID(ctx context.Context, id int64) (Thread, error)

	// Fetch retrieves a paginated list of threads.
	// cursor: opaque created_at cursor, empty string for the first page.
	Fetch(ctx context.Context, cursor string, num int64) ([]Thread, error)

	// VerifyExists returns ErrNotFound if no thread has the given ID.
	VerifyExists(ctx context.Context, id int64) error

	// FetchIDs lists thread IDs after the given ID cursor, used to warm
	// the bloom filter on startup.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// ThreadCache caches assembled thread details and per-comment like
// counters.
type ThreadCache interface {
	// GetDetail returns a cached assembled detail.
	// Returns ErrCacheMiss when the thread is not cached.
	GetDetail(ctx context.Context, id int64) (Thread, error)
	SetDetail(ctx context.Context, t *Thread) error
	DeleteDetail(ctx context.Context, id int64) error

	// Like counters, keyed per comment.
	GetLikeCount(ctx context.Context, commentID int64) (int64, error)
	MGetLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error)
	SetLikeCount(ctx context.Context, commentID int64, count int64) error
	IncrLikeCount(ctx context.Context, commentID int64) error
	DecrLikeCount(ctx context.Context, commentID int64) error
}

// ThreadRepository is the coordination contract over DB and cache.
type ThreadRepository interface {
	Store(ctx context.Context, t *Thread) error

	// GetDetail returns the thread with its owner, comments, replies and
	// like counts assembled. Served from cache when possible.
	GetDetail(ctx context.Context, id int64) (Thread, error)

	Fetch(ctx context.Context, cursor string, num int64) ([]Thread, error)

	VerifyExists(ctx context.Context, id int64) error

	// InvalidateDetail drops the cached detail after a mutation under
	// the thread.
	InvalidateDetail(ctx context.Context, id int64)

	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type ThreadUsecase interface {
	// Store creates a thread owned by t.User.ID.
	Store(ctx context.Context, t *Thread) error

	// GetDetail returns the full detail view.
	// Returns ErrNotFound for unknown thread IDs.
	GetDetail(ctx context.Context, id int64) (Thread, error)

	// Fetch lists threads without their comment trees.
	Fetch(ctx context.Context, cursor string, num int64) ([]Thread, string, error)

	// InitBloomFilter loads all existing thread IDs into the bloom
	// filter at startup.
	InitBloomFilter(ctx context.Context) error
}
