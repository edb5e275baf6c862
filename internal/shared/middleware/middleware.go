package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"triply/internal/shared/utils/response"
	"triply/internal/tokens"
	"triply/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys, kept for handlers that read them directly
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// Identity is the authenticated caller of a request
type Identity struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored by AuthGate
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// TokenVerifier verifies access tokens
type TokenVerifier interface {
	VerifyAccess(token string) (*tokens.AccessClaims, error)
}

// AuthGate requires a valid Bearer access token. A missing token is a 401,
// a token that fails verification is a 403.
func AuthGate(verifier TokenVerifier, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			log.LogAuthFailure(c.Request.Context(), "token not provided", c.ClientIP())
			response.AbortWithMessage(c, http.StatusUnauthorized, "Token not provided")
			return
		}

		claims, err := verifier.VerifyAccess(token)
		if err != nil {
			reason := "invalid token"
			if errors.Is(err, tokens.ErrTokenExpired) {
				reason = "token expired"
			}
			log.LogAuthFailure(c.Request.Context(), reason, c.ClientIP())
			response.AbortWithMessage(c, http.StatusForbidden, "Invalid token")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			log.LogAuthFailure(c.Request.Context(), "invalid subject", c.ClientIP())
			response.AbortWithMessage(c, http.StatusForbidden, "Invalid token")
			return
		}

		id := Identity{UserID: userID, Email: claims.Email}
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
		c.Set(UserIDKey, id.UserID)
		c.Set(UserEmailKey, id.Email)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
