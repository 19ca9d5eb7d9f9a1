package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kelasbackend/forum-api/domain"
)

// paramID parses a numeric path param, answering 404 on garbage since
// a non-numeric ID can never name an existing resource.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, failBody(domain.ErrNotFound.Error()))
		return 0, false
	}
	return id, true
}

// actorID reads the authenticated user id placed in the context by the
// auth middleware.
func actorID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, failBody("User not authenticated"))
		return 0, false
	}
	return userID.(int64), true
}
