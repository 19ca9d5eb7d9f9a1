package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kelasbackend/forum-api/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	res, _ := args.Get(0).([]domain.User)
	return res, args.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type ThreadDBRepository struct {
	mock.Mock
}

func (m *ThreadDBRepository) Store(ctx context.Context, t *domain.Thread) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *ThreadDBRepository) GetByID(ctx context.Context, id int64) (domain.Thread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadDBRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, error) {
	args := m.Called(ctx, cursor, num)
	res, _ := args.Get(0).([]domain.Thread)
	return res, args.Error(1)
}

func (m *ThreadDBRepository) VerifyExists(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ThreadDBRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	res, _ := args.Get(0).([]int64)
	return res, args.Error(1)
}

type ThreadRepository struct {
	mock.Mock
}

func (m *ThreadRepository) Store(ctx context.Context, t *domain.Thread) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *ThreadRepository) GetDetail(ctx context.Context, id int64) (domain.Thread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, error) {
	args := m.Called(ctx, cursor, num)
	res, _ := args.Get(0).([]domain.Thread)
	return res, args.Error(1)
}

func (m *ThreadRepository) VerifyExists(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ThreadRepository) InvalidateDetail(ctx context.Context, id int64) {
	m.Called(ctx, id)
}

func (m *ThreadRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	res, _ := args.Get(0).([]int64)
	return res, args.Error(1)
}

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Comment)
	return res, args.Error(1)
}

func (m *CommentRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) FetchByThread(ctx context.Context, threadID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, threadID)
	res, _ := args.Get(0).([]*domain.Comment)
	return res, args.Error(1)
}

type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) Store(ctx context.Context, r *domain.Reply) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReplyRepository) GetByID(ctx context.Context, id int64) (*domain.Reply, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Reply)
	return res, args.Error(1)
}

func (m *ReplyRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReplyRepository) FetchByComments(ctx context.Context, commentIDs []int64) ([]*domain.Reply, error) {
	args := m.Called(ctx, commentIDs)
	res, _ := args.Get(0).([]*domain.Reply)
	return res, args.Error(1)
}

type CommentLikeRepository struct {
	mock.Mock
}

func (m *CommentLikeRepository) Toggle(ctx context.Context, commentID, userID int64) (bool, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *CommentLikeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CommentLikeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, commentIDs)
	res, _ := args.Get(0).(map[int64]int64)
	return res, args.Error(1)
}

type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
