package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/rest/request"
)

// AuthHandler represent the http handler for the authentications resource
type AuthHandler struct {
	Service domain.AuthUsecase
}

func NewAuthHandler(svc domain.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		Service: svc,
	}
}

// Login verifies credentials and returns an access/refresh token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	pair, err := h.Service.Login(ctx, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successBody(gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}))
}

// Refresh exchanges a registered refresh token for a new access token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	accessToken, err := h.Service.RefreshAccessToken(ctx, req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successBody(gin.H{
		"accessToken": accessToken,
	}))
}

// Logout revokes the given refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	var req request.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Logout(ctx, req.RefreshToken); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successBody(nil))
}
