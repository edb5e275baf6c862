package auth

import (
	"triply/internal/shared/middleware"
	"triply/internal/shared/validation"

	"github.com/gin-gonic/gin"
)

// Router handles auth-related routes
type Router struct {
	controller *Controller
	validator  *validation.Validator
	authGate   gin.HandlerFunc
}

// NewRouter creates a new auth router
func NewRouter(controller *Controller, validator *validation.Validator, authGate gin.HandlerFunc) *Router {
	return &Router{
		controller: controller,
		validator:  validator,
		authGate:   authGate,
	}
}

// SetupRoutes registers all auth routes
func (authRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	{
		auth.POST("/login", middleware.ValidateBody[LoginSchema](authRouter.validator), authRouter.controller.Login)
		auth.POST("/logout", authRouter.controller.Logout)
		auth.POST("/refresh-token", authRouter.controller.RefreshToken)
	}

	rg.GET("/protected", authRouter.authGate, authRouter.controller.Protected)
}
