package users

import (
	"triply/internal/shared/middleware"
	"triply/internal/shared/validation"

	"github.com/gin-gonic/gin"
)

// Router handles user routes
type Router struct {
	controller *Controller
	validator  *validation.Validator
	authGate   gin.HandlerFunc
}

func NewRouter(controller *Controller, validator *validation.Validator, authGate gin.HandlerFunc) *Router {
	return &Router{
		controller: controller,
		validator:  validator,
		authGate:   authGate,
	}
}

// SetupRoutes registers all user routes
func (usersRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", middleware.ValidateBody[CreateUserSchema](usersRouter.validator), usersRouter.controller.Register)

		protected := users.Group("")
		protected.Use(usersRouter.authGate)
		{
			protected.GET("", usersRouter.controller.Profile)
		}
	}
}
