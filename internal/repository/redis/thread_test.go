package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelasbackend/forum-api/domain"
	cache "github.com/kelasbackend/forum-api/internal/repository/redis"
)

func TestGetDetail(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewThreadCache(client)

		want := domain.Thread{ID: 10, Title: "sebuah thread"}
		data, err := json.Marshal(want)
		require.NoError(t, err)

		mock.ExpectGet("thread:detail:10").SetVal(string(data))

		got, err := c.GetDetail(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, want.Title, got.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewThreadCache(client)

		mock.ExpectGet("thread:detail:10").RedisNil()

		_, err := c.GetDetail(context.Background(), 10)

		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestMGetLikeCounts(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewThreadCache(client)

	// 6没有计数，应跳过
	mock.ExpectMGet("comment:likes:5", "comment:likes:6").
		SetVal([]interface{}{"3", nil})

	counts, err := c.MGetLikeCounts(context.Background(), []int64{5, 6})

	require.NoError(t, err)
	assert.EqualValues(t, 3, counts[5])
	_, ok := counts[6]
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetLikeCount(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewThreadCache(client)

	mock.ExpectSet("comment:likes:5", int64(3), 30*time.Minute).SetVal("OK")

	assert.NoError(t, c.SetLikeCount(context.Background(), 5, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDetail(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewThreadCache(client)

	mock.ExpectDel("thread:detail:10").SetVal(1)

	assert.NoError(t, c.DeleteDetail(context.Background(), 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}
