package mysql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/repository/mysql"
)

func TestCommentLikeToggle(t *testing.T) {
	t.Run("no row yet inserts and likes", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := mysql.NewCommentLikeRepository(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comment_likes` WHERE comment_id = \\? AND user_id = \\?").
			WithArgs(5, 3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO `comment_likes`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		liked, err := repo.Toggle(context.Background(), 5, 3)

		require.NoError(t, err)
		assert.True(t, liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing row is removed and unlikes", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := mysql.NewCommentLikeRepository(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comment_likes` WHERE comment_id = \\? AND user_id = \\?").
			WithArgs(5, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		liked, err := repo.Toggle(context.Background(), 5, 3)

		require.NoError(t, err)
		assert.False(t, liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate insert surfaces conflict", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := mysql.NewCommentLikeRepository(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comment_likes` WHERE comment_id = \\? AND user_id = \\?").
			WithArgs(5, 3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO `comment_likes`").
			WillReturnError(errors.New("Error 1062: Duplicate entry '5-3' for key 'idx_comment_user'"))
		mock.ExpectRollback()

		liked, err := repo.Toggle(context.Background(), 5, 3)

		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.False(t, liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountByComment(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := mysql.NewCommentLikeRepository(gormDB)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `comment_likes` WHERE comment_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	count, err := repo.CountByComment(context.Background(), 5)

	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestCountByComments(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := mysql.NewCommentLikeRepository(gormDB)

	rows := sqlmock.NewRows([]string{"comment_id", "cnt"}).
		AddRow(5, 2).
		AddRow(6, 1)
	mock.ExpectQuery("SELECT comment_id, count\\(\\*\\) as cnt FROM `comment_likes`").
		WillReturnRows(rows)

	counts, err := repo.CountByComments(context.Background(), []int64{5, 6, 7})

	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[5])
	assert.EqualValues(t, 1, counts[6])
	// 7 has no likes and no row
	_, ok := counts[7]
	assert.False(t, ok)
}
