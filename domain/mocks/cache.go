package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kelasbackend/forum-api/domain"
)

type ThreadCache struct {
	mock.Mock
}

func (m *ThreadCache) GetDetail(ctx context.Context, id int64) (domain.Thread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadCache) SetDetail(ctx context.Context, t *domain.Thread) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *ThreadCache) DeleteDetail(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ThreadCache) GetLikeCount(ctx context.Context, commentID int64) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ThreadCache) MGetLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, commentIDs)
	res, _ := args.Get(0).(map[int64]int64)
	return res, args.Error(1)
}

func (m *ThreadCache) SetLikeCount(ctx context.Context, commentID int64, count int64) error {
	args := m.Called(ctx, commentID, count)
	return args.Error(0)
}

func (m *ThreadCache) IncrLikeCount(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *ThreadCache) DecrLikeCount(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type SyncLikesWorker struct {
	mock.Mock
}

func (m *SyncLikesWorker) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *SyncLikesWorker) Send(likeRecord domain.CommentLike, action domain.LikeAction) {
	m.Called(likeRecord, action)
}
