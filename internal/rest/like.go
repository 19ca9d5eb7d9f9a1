package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasbackend/forum-api/domain"
)

type likeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *likeHandler {
	return &likeHandler{
		Service: svc,
	}
}

// Toggle flips the like state of the authenticated user on a comment
func (h *likeHandler) Toggle(c *gin.Context) {
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

	liked, err := h.Service.Toggle(c.Request.Context(), domain.CommentLike{
		ThreadID:  threadID,
		CommentID: commentID,
		UserID:    uid,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successBody(gin.H{"liked": liked}))
}
