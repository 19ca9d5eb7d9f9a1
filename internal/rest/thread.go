package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/rest/request"
	"github.com/kelasbackend/forum-api/internal/rest/response"
)

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

// ThreadHandler represent the http handler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will create a thread owned by the authenticated user
func (h *ThreadHandler) Store(c *gin.Context) {
	var req request.Thread
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	uid, ok := actorID(c)
	if !ok {
		return
	}
	thread := req.ToDomain()
	thread.User.ID = uid

	ctx := c.Request.Context()
	if err := h.Service.Store(ctx, &thread); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successBody(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(&thread),
	}))
}

// GetByID will get the thread detail with nested comments and replies
func (h *ThreadHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	thread, err := h.Service.GetDetail(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successBody(gin.H{
		"thread": response.NewThreadDetailFromDomain(&thread),
	}))
}

// Fetch will fetch the thread list based on given params
func (h *ThreadHandler) Fetch(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}

	cursor := c.Query("cursor")
	ctx := c.Request.Context()

	threads, nextCursor, err := h.Service.Fetch(ctx, cursor, int64(num))
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]response.Thread, len(threads))
	for i := range threads {
		res[i] = response.NewThreadFromDomain(&threads[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, successBody(gin.H{
		"threads": res,
	}))
}
