package auth

import (
	"errors"
	"net/http"

	"triply/internal/shared/middleware"
	"triply/internal/shared/utils/response"
	"triply/internal/tokens"
	"triply/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service, log *logger.Logger) *Controller {
	return &Controller{
		service: service,
		log:     log,
	}
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginSchema true "Credentials"
// @Success 200 {object} tokens.TokenPair
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.MessageResponse
// @Router /users/login [post]
func (c *Controller) Login(ctx *gin.Context) {
	req := middleware.Payload[LoginSchema](ctx)

	pair, err := c.service.Login(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			c.log.LogAuthFailure(ctx.Request.Context(), "unknown email", ctx.ClientIP())
			response.RespondMessage(ctx, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, ErrInvalidPassword):
			c.log.LogAuthFailure(ctx.Request.Context(), "invalid password", ctx.ClientIP())
			response.RespondMessage(ctx, http.StatusUnauthorized, "Invalid password")
		default:
			c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondMessage(ctx, http.StatusInternalServerError, "Failed to login")
		}
		return
	}

	c.log.LogAuthSuccess(ctx.Request.Context(), pair.UserID.String(), "password")
	ctx.JSON(http.StatusOK, pair)
}

// Logout godoc
// @Summary Revoke a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body TokenRequest true "Refresh token"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.MessageResponse
// @Router /users/logout [post]
func (c *Controller) Logout(ctx *gin.Context) {
	token, ok := refreshTokenFrom(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusBadRequest, "Refresh token not provided")
		return
	}

	if err := c.service.Logout(ctx.Request.Context(), token); err != nil {
		c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondMessage(ctx, http.StatusInternalServerError, "Failed to logout")
		return
	}

	response.RespondMessage(ctx, http.StatusOK, "Logout successful")
}

// RefreshToken godoc
// @Summary Redeem a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body TokenRequest true "Refresh token"
// @Success 200 {object} tokens.TokenPair
// @Failure 400 {object} response.MessageResponse
// @Failure 403 {object} response.MessageResponse
// @Router /users/refresh-token [post]
func (c *Controller) RefreshToken(ctx *gin.Context) {
	token, ok := refreshTokenFrom(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusBadRequest, "Refresh token not provided")
		return
	}

	pair, err := c.service.RefreshToken(ctx.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, tokens.ErrRefreshNotFound):
			response.RespondMessage(ctx, http.StatusForbidden, "Refresh token not found")
		case errors.Is(err, tokens.ErrRefreshRejected):
			response.RespondMessage(ctx, http.StatusForbidden, "Token expired or invalid")
		default:
			c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondMessage(ctx, http.StatusInternalServerError, "Failed to refresh token")
		}
		return
	}

	ctx.JSON(http.StatusOK, pair)
}

// Protected godoc
// @Summary Echo the authenticated identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProtectedResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 403 {object} response.MessageResponse
// @Router /protected [get]
func (c *Controller) Protected(ctx *gin.Context) {
	id, ok := middleware.IdentityFrom(ctx.Request.Context())
	if !ok {
		response.RespondMessage(ctx, http.StatusUnauthorized, "Token not provided")
		return
	}
	ctx.JSON(http.StatusOK, ProtectedResponse{Message: "You are authenticated!", User: id})
}

// ProtectedResponse is the body of GET /protected
type ProtectedResponse struct {
	Message string              `json:"message"`
	User    middleware.Identity `json:"user"`
}

func refreshTokenFrom(ctx *gin.Context) (string, bool) {
	var req TokenRequest
	// a missing or malformed body is treated as a missing token
	_ = ctx.ShouldBindJSON(&req)
	return req.RefreshToken, req.RefreshToken != ""
}
