package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/redis/go-redis/v9"
)

const (
	KeyThreadDetail = "thread:detail:%d"
	KeyCommentLikes = "comment:likes:%d"

	detailTTL    = 10 * time.Minute
	likeCountTTL = 30 * time.Minute
)

type threadCache struct {
	client *redis.Client
}

var _ domain.ThreadCache = (*threadCache)(nil)

func NewThreadCache(client *redis.Client) *threadCache {
	return &threadCache{
		client,
	}
}

func (c *threadCache) GetDetail(ctx context.Context, id int64) (res domain.Thread, err error) {
	key := fmt.Sprintf(KeyThreadDetail, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Thread{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Thread{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Thread{}, err
	}
	return
}

func (c *threadCache) SetDetail(ctx context.Context, t *domain.Thread) error {
	key := fmt.Sprintf(KeyThreadDetail, t.ID)
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, detailTTL).Err()
}

func (c *threadCache) DeleteDetail(ctx context.Context, id int64) error {
	key := fmt.Sprintf(KeyThreadDetail, id)
	return c.client.Del(ctx, key).Err()
}

func (c *threadCache) GetLikeCount(ctx context.Context, commentID int64) (int64, error) {
	resStr, err := c.client.Get(ctx, fmt.Sprintf(KeyCommentLikes, commentID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseInt(resStr, 10, 64)
}

func (c *threadCache) MGetLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	keys := make([]string, len(commentIDs))
	for i, id := range commentIDs {
		keys[i] = fmt.Sprintf(KeyCommentLikes, id)
	}

	result, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(commentIDs))
	for i, val := range result {
		if val == nil {
			continue
		}
		if str, ok := val.(string); ok {
			count, err := strconv.ParseInt(str, 10, 64)
			if err != nil {
				continue
			}
			counts[commentIDs[i]] = count
		}
	}

	return counts, nil
}

func (c *threadCache) SetLikeCount(ctx context.Context, commentID int64, count int64) error {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	return c.client.Set(ctx, key, count, likeCountTTL).Err()
}

// IncrLikeCount only bumps an already-warm counter, the DB row count is
// the source of truth for cold keys.
func (c *threadCache) IncrLikeCount(ctx context.Context, commentID int64) error {
	return c.adjustLikeCount(ctx, commentID, 1)
}

func (c *threadCache) DecrLikeCount(ctx context.Context, commentID int64) error {
	return c.adjustLikeCount(ctx, commentID, -1)
}

func (c *threadCache) adjustLikeCount(ctx context.Context, commentID int64, delta int64) error {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	script := redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 1 then
			return redis.call('INCRBY', KEYS[1], ARGV[1])
		end
		return -1
	`)
	return script.Run(ctx, c.client, []string{key}, delta).Err()
}
