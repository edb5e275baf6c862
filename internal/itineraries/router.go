package itineraries

import (
	"triply/internal/shared/middleware"
	"triply/internal/shared/validation"

	"github.com/gin-gonic/gin"
)

// Router handles itinerary routes and their nested details, optional
// add-ons and media
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

// SetupRoutes registers all itinerary routes
func (itinerariesRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	c := itinerariesRouter.controller
	v := itinerariesRouter.validator

	itineraries := rg.Group("/itineraries")
	{
		itineraries.GET("", c.GetItineraries)
		itineraries.GET("/:id", c.GetItinerary)
		itineraries.POST("", itinerariesRouter.authGate, middleware.ValidateBody[ItinerarySchema](v), c.CreateItinerary)
		itineraries.PATCH("/:id", middleware.ValidateBody[UpdateItinerarySchema](v), c.UpdateItinerary)
		itineraries.DELETE("/:id", c.DeleteItinerary)

		itineraries.GET("/:id/details", c.GetDetails)
		itineraries.POST("/details", middleware.ValidateBody[DetailsSchema](v), c.CreateDetails)
		itineraries.PATCH("/details/:id", middleware.ValidateBody[UpdateDetailsSchema](v), c.UpdateDetails)
		itineraries.DELETE("/details/:id", c.DeleteDetails)

		itineraries.GET("/details/:id/optional", c.GetOptional)
		itineraries.POST("/details/optional", middleware.ValidateBody[OptionalSchema](v), c.CreateOptional)
		itineraries.PATCH("/details/optional/:id", middleware.ValidateBody[UpdateOptionalSchema](v), c.UpdateOptional)
		itineraries.DELETE("/details/optional/:id", c.DeleteOptional)

		itineraries.GET("/:id/media", c.GetMedia)
		itineraries.POST("/media", middleware.ValidateBody[MediaSchema](v), c.CreateMedia)
		itineraries.PATCH("/media/:id", middleware.ValidateBody[UpdateMediaSchema](v), c.UpdateMedia)
		itineraries.DELETE("/media/:id", c.DeleteMedia)
	}
}
