package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/rest/request"
	"github.com/kelasbackend/forum-api/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) Store(c *gin.Context) {
	var req request.Reply
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
	commentID, ok := paramID(c, "commentId")
	if !ok {
		return
	}

	reply := req.ToDomain()
	reply.CommentID = commentID
	reply.UserID = uid

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &reply, threadID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successBody(gin.H{
		"addedReply": response.NewAddedReplyFromDomain(&reply),
	}))
}

func (h *replyHandler) Delete(c *gin.Context) {
	threadID, ok := paramID(c, "id")
	if !ok {
		return
	}
	commentID, ok := paramID(c, "commentId")
	if !ok {
		return
	}
	replyID, ok := paramID(c, "replyId")
	if !ok {
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, threadID, commentID, replyID, uid); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successBody(nil))
}
