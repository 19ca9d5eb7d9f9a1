package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/rest/request"
	"github.com/kelasbackend/forum-api/internal/rest/response"
)

// UserHandler represent the http handler for user registration
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register will create a new user account by given request body
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := req.ToDomain()
	ctx := c.Request.Context()
	if err := h.Service.Register(ctx, &user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successBody(gin.H{
		"addedUser": response.NewAddedUserFromDomain(&user),
	}))
}
