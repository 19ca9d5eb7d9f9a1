package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/rest/request"
	"github.com/kelasbackend/forum-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) Store(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	uid, ok := actorID(c)
	if !ok {
		return
	}
	threadID, ok := paramID(c, "id")
	if !ok {
		return
	}

	comment := req.ToDomain()
	comment.ThreadID = threadID
	comment.UserID = uid

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successBody(gin.H{
		"addedComment": response.NewAddedCommentFromDomain(&comment),
	}))
}

func (h *commentHandler) Delete(c *gin.Context) {
	threadID, ok := paramID(c, "id")
	if !ok {
		return
	}
	commentID, ok := paramID(c, "commentId")
	if !ok {
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, threadID, commentID, uid); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successBody(nil))
}
