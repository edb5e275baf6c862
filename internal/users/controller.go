package users

import (
	"errors"
	"net/http"

	"triply/internal/shared/middleware"
	"triply/internal/shared/utils/response"
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

// Register godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param body body CreateUserSchema true "User"
// @Success 201 {object} UserResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /users [post]
func (c *Controller) Register(ctx *gin.Context) {
	req := middleware.Payload[CreateUserSchema](ctx)

	user, err := c.service.Register(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailInUse):
			response.RespondError(ctx, http.StatusBadRequest, "Email already in use")
		default:
			c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondError(ctx, http.StatusInternalServerError, "Error creating user")
		}
		return
	}

	ctx.JSON(http.StatusCreated, ToUserResponse(user))
}

// Profile godoc
// @Summary Current user with owned itineraries
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /users [get]
func (c *Controller) Profile(ctx *gin.Context) {
	id, ok := middleware.IdentityFrom(ctx.Request.Context())
	if !ok {
		response.RespondMessage(ctx, http.StatusUnauthorized, "Token not provided")
		return
	}

	user, err := c.service.Profile(ctx.Request.Context(), id.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.RespondMessage(ctx, http.StatusNotFound, "User not found")
		default:
			c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondMessage(ctx, http.StatusInternalServerError, "Error fetching user")
		}
		return
	}

	ctx.JSON(http.StatusOK, ToProfileResponse(user))
}
