package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const validationFailed = "Validation failed"

// RespondMessage writes {"message": message}
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// RespondError writes {"error": message}
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// AbortWithMessage writes {"message": message} and stops the handler chain
func AbortWithMessage(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, MessageResponse{Message: message})
}

// AbortWithValidation writes a validation failure and stops the handler chain
func AbortWithValidation(c *gin.Context, details map[string][]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: validationFailed, Details: details})
}
