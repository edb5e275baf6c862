package itineraries

import (
	"errors"
	"net/http"
	"strconv"

	"triply/internal/shared/middleware"
	"triply/internal/shared/utils/response"
	"triply/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

// GetItineraries godoc
// @Summary List itineraries
// @Tags itineraries
// @Produce json
// @Param name query string false "Case-insensitive name filter"
// @Param user_id query string false "Owner id"
// @Param simplified query bool false "Only id, name, cover and popular"
// @Success 200 {array} Itinerary
// @Failure 400 {object} response.MessageResponse
// @Router /itineraries [get]
func (c *Controller) GetItineraries(ctx *gin.Context) {
	filter := ListFilter{Name: ctx.Query("name")}
	if raw := ctx.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondMessage(ctx, http.StatusBadRequest, "Invalid user ID")
			return
		}
		filter.UserID = &userID
	}

	if simplified(ctx.Query("simplified")) {
		items, err := c.service.ListSimplified(ctx.Request.Context(), filter)
		if err != nil {
			c.internal(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, items)
		return
	}

	items, err := c.service.List(ctx.Request.Context(), filter)
	if err != nil {
		c.internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetItinerary godoc
// @Summary Itinerary with media, details and optional add-ons
// @Tags itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} Itinerary
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/{id} [get]
func (c *Controller) GetItinerary(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary not found")
		return
	}

	it, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, it)
}

// CreateItinerary godoc
// @Summary Create an itinerary owned by the caller
// @Tags itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ItinerarySchema true "Itinerary"
// @Success 201 {object} Itinerary
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.MessageResponse
// @Router /itineraries [post]
func (c *Controller) CreateItinerary(ctx *gin.Context) {
	identity, ok := middleware.IdentityFrom(ctx.Request.Context())
	if !ok {
		response.RespondMessage(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}
	req := middleware.Payload[ItinerarySchema](ctx)

	it, err := c.service.Create(ctx.Request.Context(), identity.UserID, req)
	if err != nil {
		if errors.Is(err, ErrParentNotFound) {
			response.RespondMessage(ctx, http.StatusBadRequest, "Error creating itinerary")
			return
		}
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, it)
}

// UpdateItinerary godoc
// @Summary Update an itinerary
// @Tags itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary id"
// @Param body body UpdateItinerarySchema true "Fields to change"
// @Success 200 {object} Itinerary
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/{id} [patch]
func (c *Controller) UpdateItinerary(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary not found")
		return
	}
	req := middleware.Payload[UpdateItinerarySchema](ctx)

	it, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, it)
}

// DeleteItinerary godoc
// @Summary Delete an itinerary with its details, optional add-ons and media
// @Tags itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Failure 409 {object} response.MessageResponse
// @Router /itineraries/{id} [delete]
func (c *Controller) DeleteItinerary(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary not found")
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, err)
		return
	}
	response.RespondMessage(ctx, http.StatusOK, "Itinerary deleted")
}

// GetDetails godoc
// @Summary Details of an itinerary
// @Tags details
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {array} Details
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/{id}/details [get]
func (c *Controller) GetDetails(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary details not found")
		return
	}

	items, err := c.service.ListDetails(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// CreateDetails godoc
// @Summary Add details to an itinerary
// @Tags details
// @Accept json
// @Produce json
// @Param body body DetailsSchema true "Details"
// @Success 201 {object} Details
// @Failure 400 {object} response.ErrorResponse
// @Router /itineraries/details [post]
func (c *Controller) CreateDetails(ctx *gin.Context) {
	req := middleware.Payload[DetailsSchema](ctx)

	d, err := c.service.CreateDetails(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDetailsExist):
			response.RespondMessage(ctx, http.StatusBadRequest, "Itinerary details already exist")
		case errors.Is(err, ErrParentNotFound):
			response.RespondMessage(ctx, http.StatusBadRequest, "Error creating itinerary details")
		default:
			c.internal(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusCreated, d)
}

// UpdateDetails godoc
// @Summary Update the details of an itinerary
// @Tags details
// @Accept json
// @Produce json
// @Param id path string true "Itinerary id"
// @Param body body UpdateDetailsSchema true "Fields to change"
// @Success 200 {object} Details
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/details/{id} [patch]
func (c *Controller) UpdateDetails(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary details not found")
		return
	}
	req := middleware.Payload[UpdateDetailsSchema](ctx)

	d, err := c.service.UpdateDetails(ctx.Request.Context(), id, req)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, d)
}

// DeleteDetails godoc
// @Summary Delete the details of an itinerary
// @Tags details
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Failure 409 {object} response.MessageResponse
// @Router /itineraries/details/{id} [delete]
func (c *Controller) DeleteDetails(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary details not found")
		return
	}

	if err := c.service.DeleteDetails(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, err)
		return
	}
	response.RespondMessage(ctx, http.StatusOK, "Itinerary details deleted")
}

// GetOptional godoc
// @Summary Optional add-ons of a details record
// @Tags optional
// @Produce json
// @Param id path string true "Details id"
// @Success 200 {array} Optional
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/details/{id}/optional [get]
func (c *Controller) GetOptional(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Optional not found")
		return
	}

	items, err := c.service.ListOptional(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrOptionalNotFound) {
			response.RespondMessage(ctx, http.StatusNotFound, "Optional not found")
			return
		}
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// CreateOptional godoc
// @Summary Add an optional add-on to a details record
// @Tags optional
// @Accept json
// @Produce json
// @Param body body OptionalSchema true "Optional add-on"
// @Success 201 {object} Optional
// @Failure 400 {object} response.ErrorResponse
// @Router /itineraries/details/optional [post]
func (c *Controller) CreateOptional(ctx *gin.Context) {
	req := middleware.Payload[OptionalSchema](ctx)

	o, err := c.service.CreateOptional(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrParentNotFound) {
			response.RespondMessage(ctx, http.StatusBadRequest, "Error creating itinerary optional")
			return
		}
		c.internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, o)
}

// UpdateOptional godoc
// @Summary Update an optional add-on
// @Tags optional
// @Accept json
// @Produce json
// @Param id path string true "Optional id"
// @Param body body UpdateOptionalSchema true "Fields to change"
// @Success 200 {object} Optional
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/details/optional/{id} [patch]
func (c *Controller) UpdateOptional(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary optional not found")
		return
	}
	req := middleware.Payload[UpdateOptionalSchema](ctx)

	o, err := c.service.UpdateOptional(ctx.Request.Context(), id, req)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, o)
}

// DeleteOptional godoc
// @Summary Delete an optional add-on
// @Tags optional
// @Produce json
// @Param id path string true "Optional id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/details/optional/{id} [delete]
func (c *Controller) DeleteOptional(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary optional not found")
		return
	}

	if err := c.service.DeleteOptional(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, err)
		return
	}
	response.RespondMessage(ctx, http.StatusOK, "Itinerary optional deleted")
}

// GetMedia godoc
// @Summary Media of an itinerary
// @Tags media
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {array} Media
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/{id}/media [get]
func (c *Controller) GetMedia(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Media not found")
		return
	}

	items, err := c.service.ListMedia(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// CreateMedia godoc
// @Summary Attach media to an itinerary
// @Tags media
// @Accept json
// @Produce json
// @Param body body MediaSchema true "Media"
// @Success 201 {object} Media
// @Failure 400 {object} response.ErrorResponse
// @Router /itineraries/media [post]
func (c *Controller) CreateMedia(ctx *gin.Context) {
	req := middleware.Payload[MediaSchema](ctx)

	m, err := c.service.CreateMedia(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrParentNotFound) {
			response.RespondMessage(ctx, http.StatusBadRequest, "Error creating itinerary media")
			return
		}
		c.internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, m)
}

// UpdateMedia godoc
// @Summary Update a media entry
// @Tags media
// @Accept json
// @Produce json
// @Param id path string true "Media id"
// @Param body body UpdateMediaSchema true "Fields to change"
// @Success 200 {object} Media
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/media/{id} [patch]
func (c *Controller) UpdateMedia(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Media not found")
		return
	}
	req := middleware.Payload[UpdateMediaSchema](ctx)

	m, err := c.service.UpdateMedia(ctx.Request.Context(), id, req)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, m)
}

// DeleteMedia godoc
// @Summary Delete a media entry
// @Tags media
// @Produce json
// @Param id path string true "Media id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /itineraries/media/{id} [delete]
func (c *Controller) DeleteMedia(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		response.RespondMessage(ctx, http.StatusNotFound, "Media not found")
		return
	}

	if err := c.service.DeleteMedia(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, err)
		return
	}
	response.RespondMessage(ctx, http.StatusOK, "Itinerary media deleted")
}

// fail maps service errors to responses
func (c *Controller) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrItineraryNotFound):
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrDetailsNotFound):
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary details not found")
	case errors.Is(err, ErrOptionalNotFound):
		response.RespondMessage(ctx, http.StatusNotFound, "Itinerary optional not found")
	case errors.Is(err, ErrMediaNotFound):
		response.RespondMessage(ctx, http.StatusNotFound, "Media not found")
	case errors.Is(err, ErrConflict):
		c.log.LogHTTPError(ctx, err, http.StatusConflict)
		response.RespondMessage(ctx, http.StatusConflict, "Conflict: related data still exists.")
	default:
		c.internal(ctx, err)
	}
}

func (c *Controller) internal(ctx *gin.Context, err error) {
	c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
	response.RespondMessage(ctx, http.StatusInternalServerError, "Internal server error")
}

func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	return id, err == nil
}

// simplified reads the ?simplified flag. Any value other than a false
// boolean switches it on.
func simplified(raw string) bool {
	if raw == "" {
		return false
	}
	on, err := strconv.ParseBool(raw)
	return err != nil || on
}
