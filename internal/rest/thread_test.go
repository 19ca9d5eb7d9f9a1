package rest_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/domain/mocks"
	"github.com/kelasbackend/forum-api/internal/rest"
)

func threadRouter(svc domain.ThreadUsecase, userID int64) *gin.Engine {
	r := gin.New()
	h := rest.NewThreadHandler(svc)
	r.GET("/threads", h.Fetch)
	r.GET("/threads/:id", h.GetByID)
	r.POST("/threads", func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", userID)
		}
		h.Store(c)
	})
	return r
}

func TestThreadStore(t *testing.T) {
	mockSvc := new(mocks.ThreadUsecase)
	mockSvc.On("Store", mock.Anything, mock.AnythingOfType("*domain.Thread")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Thread).ID = 10
		}).
		Return(nil).Once()

	r := threadRouter(mockSvc, 2)
	w := performRequest(r, http.MethodPost, "/threads",
		`{"title":"sebuah thread","body":"sebuah body"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body rest.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	added := body.Data.(map[string]any)["addedThread"].(map[string]any)
	assert.EqualValues(t, 10, added["id"])
	assert.EqualValues(t, 2, added["owner"])
	mockSvc.AssertExpectations(t)
}

func TestThreadGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		detail := domain.Thread{
			ID:    10,
			Title: "sebuah thread",
			User:  domain.User{ID: 2, Username: "dicoding"},
			Comments: []*domain.Comment{
				{ID: 5, Content: "sebuah komentar", Username: "johndoe", Replies: []*domain.Reply{}},
			},
		}
		mockSvc := new(mocks.ThreadUsecase)
		mockSvc.On("GetDetail", mock.Anything, int64(10)).Return(detail, nil).Once()

		r := threadRouter(mockSvc, 0)
		w := performRequest(r, http.MethodGet, "/threads/10", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var body rest.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		th := body.Data.(map[string]any)["thread"].(map[string]any)
		assert.Equal(t, "dicoding", th["username"])
		assert.Len(t, th["comments"], 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockSvc := new(mocks.ThreadUsecase)
		mockSvc.On("GetDetail", mock.Anything, int64(99)).
			Return(domain.Thread{}, domain.ErrNotFound).Once()

		r := threadRouter(mockSvc, 0)
		w := performRequest(r, http.MethodGet, "/threads/99", "")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body rest.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, rest.StatusFail, body.Status)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		mockSvc := new(mocks.ThreadUsecase)

		r := threadRouter(mockSvc, 0)
		w := performRequest(r, http.MethodGet, "/threads/abc", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockSvc.AssertNotCalled(t, "GetDetail", mock.Anything, mock.Anything)
	})
}

func TestThreadFetch(t *testing.T) {
	threads := []domain.Thread{
		{ID: 1, Title: "a", CreatedAt: time.Now(), User: domain.User{Username: "dicoding"}},
	}

	mockSvc := new(mocks.ThreadUsecase)
	// num outside [5,30] falls back to the default page size
	mockSvc.On("Fetch", mock.Anything, "", int64(10)).
		Return(threads, "next-cursor", nil).Once()

	r := threadRouter(mockSvc, 0)
	w := performRequest(r, http.MethodGet, "/threads?num=1000", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "next-cursor", w.Header().Get("X-cursor"))
	mockSvc.AssertExpectations(t)
}
