package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/domain/mocks"
	ucase "github.com/kelasbackend/forum-api/internal/usecase/comment"
)

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockBloom := new(mocks.BloomRepository)
		mockBloom.On("Exists", mock.Anything, int64(10)).Return(true, nil).Once()

		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyExists", mock.Anything, int64(10)).Return(nil).Once()
		mockThreadRepo.On("InvalidateDetail", mock.Anything, int64(10)).Once()

		mockCommentRepo := new(mocks.CommentRepository)
		mockCommentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(args mock.Arguments) {
				c := args.Get(1).(*domain.Comment)
				c.ID = 5
			}).
			Return(nil).Once()

		svc := ucase.NewService(mockCommentRepo, mockThreadRepo, mockBloom)
		c := domain.Comment{ThreadID: 10, UserID: 2, Content: "sebuah komentar"}
		err := svc.Create(context.Background(), &c)

		require.NoError(t, err)
		assert.EqualValues(t, 5, c.ID)
		mockCommentRepo.AssertExpectations(t)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("thread rejected by bloom filter", func(t *testing.T) {
		mockBloom := new(mocks.BloomRepository)
		mockBloom.On("Exists", mock.Anything, int64(99)).Return(false, nil).Once()

		svc := ucase.NewService(new(mocks.CommentRepository), new(mocks.ThreadRepository), mockBloom)
		err := svc.Create(context.Background(), &domain.Comment{ThreadID: 99, Content: "x"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("thread missing in database", func(t *testing.T) {
		mockBloom := new(mocks.BloomRepository)
		mockBloom.On("Exists", mock.Anything, int64(99)).Return(true, nil).Once()

		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyExists", mock.Anything, int64(99)).Return(domain.ErrNotFound).Once()

		svc := ucase.NewService(new(mocks.CommentRepository), mockThreadRepo, mockBloom)
		err := svc.Create(context.Background(), &domain.Comment{ThreadID: 99, Content: "x"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	existing := &domain.Comment{ID: 5, ThreadID: 10, UserID: 2, Content: "sebuah komentar"}

	newService := func(c *domain.Comment) (*mocks.CommentRepository, *mocks.ThreadRepository, domain.CommentUsecase) {
		mockBloom := new(mocks.BloomRepository)
		mockBloom.On("Exists", mock.Anything, int64(10)).Return(true, nil)

		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyExists", mock.Anything, int64(10)).Return(nil)
		mockThreadRepo.On("InvalidateDetail", mock.Anything, int64(10)).Maybe()

		mockCommentRepo := new(mocks.CommentRepository)
		mockCommentRepo.On("GetByID", mock.Anything, int64(5)).Return(c, nil)

		return mockCommentRepo, mockThreadRepo, ucase.NewService(mockCommentRepo, mockThreadRepo, mockBloom)
	}

	t.Run("owner can soft delete", func(t *testing.T) {
		mockCommentRepo, _, svc := newService(existing)
		mockCommentRepo.On("SoftDelete", mock.Anything, int64(5)).Return(nil).Once()

		err := svc.Delete(context.Background(), 10, 5, 2)

		assert.NoError(t, err)
		mockCommentRepo.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		mockCommentRepo, _, svc := newService(existing)

		err := svc.Delete(context.Background(), 10, 5, 999)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		mockCommentRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	})

	t.Run("comment of another thread is not found", func(t *testing.T) {
		other := &domain.Comment{ID: 5, ThreadID: 77, UserID: 2}
		mockCommentRepo, _, svc := newService(other)

		err := svc.Delete(context.Background(), 10, 5, 2)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockCommentRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	})
}
