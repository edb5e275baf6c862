package middleware

import (
	"io"

	"triply/internal/shared/utils/response"
	"triply/internal/shared/validation"

	"github.com/gin-gonic/gin"
)

const payloadKey = "validated_payload"

// ValidateBody decodes and validates the JSON body as T. On success the
// normalized *T is available to handlers through Payload.
func ValidateBody[T any](v *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.AbortWithValidation(c, validation.FieldErrors{"body": {"Unable to read request body"}})
			return
		}

		payload, errs := validation.Bind[T](v, raw)
		if errs != nil {
			response.AbortWithValidation(c, errs)
			return
		}

		c.Set(payloadKey, payload)
		c.Next()
	}
}

// Payload returns the value stored by ValidateBody[T]. It panics when the
// route is not guarded by ValidateBody[T].
func Payload[T any](c *gin.Context) *T {
	return c.MustGet(payloadKey).(*T)
}
