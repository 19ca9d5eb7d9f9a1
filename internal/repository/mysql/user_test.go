package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/repository/mysql"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserGetByUsername(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := mysql.NewUserRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password", "fullname", "created_at", "updated_at"}).
		AddRow(1, "dicoding", "hashed-secret", "Dicoding Indonesia", now, now)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(rows)

	u, err := repo.GetByUsername(context.Background(), "dicoding")

	require.NoError(t, err)
	assert.EqualValues(t, 1, u.ID)
	assert.Equal(t, "dicoding", u.Username)
	assert.Equal(t, "hashed-secret", u.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByUsernameNotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := mysql.NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserInsert(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := mysql.NewUserRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	u := domain.User{Username: "dicoding", Password: "hashed-secret", Fullname: "Dicoding Indonesia"}
	err := repo.Insert(context.Background(), &u)

	require.NoError(t, err)
	assert.EqualValues(t, 12, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByIDs(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := mysql.NewUserRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password", "fullname", "created_at", "updated_at"}).
		AddRow(1, "dicoding", "x", "Dicoding Indonesia", now, now).
		AddRow(2, "johndoe", "y", "John Doe", now, now)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id in \\(\\?,\\?\\)").
		WillReturnRows(rows)

	users, err := repo.GetByIDs(context.Background(), []int64{1, 2})

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "johndoe", users[1].Username)
}
