package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// threadRepository 协调层，协调缓存和数据库
type threadRepository struct {
	db          domain.ThreadDBRepository
	cache       domain.ThreadCache
	userRepo    domain.UserRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.CommentLikeRepository

	rebuildGroup singleflight.Group
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository 创建协调层repository
func NewThreadRepository(
	db domain.ThreadDBRepository,
	cache domain.ThreadCache,
	userRepo domain.UserRepository,
	commentRepo domain.CommentRepository,
	replyRepo domain.ReplyRepository,
	likeRepo domain.CommentLikeRepository,
) *threadRepository {
	return &threadRepository{
		db:          db,
		cache:       cache,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		likeRepo:    likeRepo,
	}
}

// Store 创建帖子
func (r *threadRepository) Store(ctx context.Context, t *domain.Thread) error {
	return r.db.Store(ctx, t)
}

// GetDetail 获取帖子详情，先查缓存，未命中用singleflight重建避免缓存击穿
func (r *threadRepository) GetDetail(ctx context.Context, id int64) (domain.Thread, error) {
	detail, err := r.cache.GetDetail(ctx, id)
	if err == nil {
		// 缓存命中，叠加最新的点赞数
		r.overlayLikeCounts(ctx, &detail)
		return detail, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error for thread %d: %v", id, err)
	}

	key := fmt.Sprintf("thread:%d", id)
	result, err, _ := r.rebuildGroup.Do(key, func() (interface{}, error) {
		return r.buildDetail(ctx, id)
	})
	if err != nil {
		return domain.Thread{}, err
	}

	return result.(domain.Thread), nil
}

// Fetch 获取帖子列表
func (r *threadRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, error) {
	threads, err := r.db.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, err
	}
	return r.fillThreadOwners(ctx, threads)
}

func (r *threadRepository) VerifyExists(ctx context.Context, id int64) error {
	return r.db.VerifyExists(ctx, id)
}

// InvalidateDetail 异步删除缓存
func (r *threadRepository) InvalidateDetail(ctx context.Context, id int64) {
	go func(id int64) {
		if err := r.cache.DeleteDetail(context.Background(), id); err != nil {
			logrus.Warnf("failed to invalidate thread detail cache, id: %d, err: %v", id, err)
		}
	}(id)
}

func (r *threadRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// buildDetail 从数据库组装完整详情并回填缓存
func (r *threadRepository) buildDetail(ctx context.Context, id int64) (domain.Thread, error) {
	thread, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.Thread{}, err
	}

	comments, err := r.commentRepo.FetchByThread(ctx, id)
	if err != nil {
		return domain.Thread{}, err
	}

	commentIDs := make([]int64, len(comments))
	for i, comment := range comments {
		commentIDs[i] = comment.ID
	}

	replies, err := r.replyRepo.FetchByComments(ctx, commentIDs)
	if err != nil {
		return domain.Thread{}, err
	}

	counts, err := r.likeRepo.CountByComments(ctx, commentIDs)
	if err != nil {
		return domain.Thread{}, err
	}

	replyMap := make(map[int64][]*domain.Reply)
	for _, reply := range replies {
		replyMap[reply.CommentID] = append(replyMap[reply.CommentID], reply)
	}

	for _, comment := range comments {
		comment.LikeCount = counts[comment.ID]
		if list, ok := replyMap[comment.ID]; ok {
			comment.Replies = list
		} else {
			comment.Replies = []*domain.Reply{}
		}
	}
	thread.Comments = comments

	if err := r.fillUsernames(ctx, &thread); err != nil {
		return domain.Thread{}, err
	}
	// password hashes never leave the user repository
	thread.User.Password = ""

	// 异步回填缓存和点赞数
	go func(t domain.Thread) {
		ctx := context.Background()
		if err := r.cache.SetDetail(ctx, &t); err != nil {
			logrus.Warnf("failed to set thread detail cache: %v", err)
		}
		for _, comment := range t.Comments {
			_ = r.cache.SetLikeCount(ctx, comment.ID, comment.LikeCount)
		}
	}(thread)

	return thread, nil
}

// overlayLikeCounts 用缓存中最新的点赞数覆盖详情里的快照
func (r *threadRepository) overlayLikeCounts(ctx context.Context, t *domain.Thread) {
	if len(t.Comments) == 0 {
		return
	}
	ids := make([]int64, len(t.Comments))
	for i, comment := range t.Comments {
		ids[i] = comment.ID
	}

	counts, err := r.cache.MGetLikeCounts(ctx, ids)
	if err != nil {
		logrus.Warnf("failed to MGetLikeCounts from redis: %v", err)
		return
	}
	for _, comment := range t.Comments {
		if count, ok := counts[comment.ID]; ok {
			comment.LikeCount = count
		}
	}
}

// fillUsernames 批量填充帖子、评论和回复的作者用户名
func (r *threadRepository) fillUsernames(ctx context.Context, t *domain.Thread) error {
	userIDs := make([]int64, 0, 1+len(t.Comments))
	existMap := make(map[int64]bool)
	collect := func(id int64) {
		if !existMap[id] {
			userIDs = append(userIDs, id)
			existMap[id] = true
		}
	}

	collect(t.User.ID)
	for _, comment := range t.Comments {
		collect(comment.UserID)
		for _, reply := range comment.Replies {
			collect(reply.UserID)
		}
	}

	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	if u, ok := userMap[t.User.ID]; ok {
		t.User = u
	}
	for _, comment := range t.Comments {
		comment.Username = userMap[comment.UserID].Username
		for _, reply := range comment.Replies {
			reply.Username = userMap[reply.UserID].Username
		}
	}
	return nil
}

// fillThreadOwners 批量填充列表页的作者信息
func (r *threadRepository) fillThreadOwners(ctx context.Context, threads []domain.Thread) ([]domain.Thread, error) {
	if len(threads) == 0 {
		return threads, nil
	}

	userIDs := make([]int64, 0, len(threads))
	existMap := make(map[int64]bool)
	for _, item := range threads {
		if !existMap[item.User.ID] {
			userIDs = append(userIDs, item.User.ID)
			existMap[item.User.ID] = true
		}
	}

	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]domain.User)
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range threads {
		if u, ok := userMap[threads[i].User.ID]; ok {
			threads[i].User = u
		}
	}

	return threads, nil
}
