package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"triply/internal/shared/config"
	"triply/internal/shared/validation"
	"triply/internal/tokens"
	"triply/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jwtCfg = config.JWTConfig{
	Secret:           "access-secret",
	RefreshSecret:    "refresh-secret",
	JWTExpiresIn:     time.Hour,
	RefreshExpiresIn: time.Hour,
}

func protectedRouter(verifier TokenVerifier) (*gin.Engine, *bool) {
	reached := false
	r := gin.New()
	r.GET("/protected", AuthGate(verifier, logger.Nop()), func(c *gin.Context) {
		reached = true
		id, ok := IdentityFrom(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": id, "key": c.GetString(UserEmailKey)})
	})
	return r, &reached
}

func TestAuthGate(t *testing.T) {
	now := time.Now()
	svc := tokens.NewService(nil, jwtCfg)
	expiredSvc := tokens.NewService(nil, jwtCfg, tokens.WithClock(func() time.Time { return now.Add(-2 * time.Hour) }))

	userID := uuid.New()
	valid, err := svc.IssueAccess(userID, "ann@example.com")
	require.NoError(t, err)
	expired, err := expiredSvc.IssueAccess(userID, "ann@example.com")
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"missing header", "", http.StatusUnauthorized, "Token not provided"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Token not provided"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Token not provided"},
		{"bare token", valid, http.StatusUnauthorized, "Token not provided"},
		{"garbage token", "Bearer garbage", http.StatusForbidden, "Invalid token"},
		{"expired token", "Bearer " + expired, http.StatusForbidden, "Invalid token"},
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, reached := protectedRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.False(t, *reached)
				assert.JSONEq(t, `{"message":"`+tt.wantMessage+`"}`, rec.Body.String())
				return
			}

			assert.True(t, *reached)
			var body struct {
				User Identity `json:"user"`
				Key  string   `json:"key"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, userID, body.User.UserID)
			assert.Equal(t, "ann@example.com", body.User.Email)
			assert.Equal(t, "ann@example.com", body.Key)
		})
	}
}

type noteSchema struct {
	Title string `json:"title" validate:"required,min=3" label:"title"`
	Tags  int    `json:"tags"`
}

func (n *noteSchema) Normalize() {
	n.Title = strings.TrimSpace(n.Title)
}

func validatedRouter() *gin.Engine {
	r := gin.New()
	r.POST("/notes", ValidateBody[noteSchema](validation.New()), func(c *gin.Context) {
		c.JSON(http.StatusCreated, Payload[noteSchema](c))
	})
	return r
}

func TestValidateBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid body is normalized and stripped",
			body:       `{"title":"  Trip  ","tags":2,"admin":true}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"title":"Trip","tags":2}`,
		},
		{
			name:       "constraint failure",
			body:       `{"title":"ab"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","details":{"title":["Title must be at least 3 characters long"]}}`,
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","details":{"title":["Title is required"]}}`,
		},
		{
			name:       "type mismatch",
			body:       `{"title":"Trip","tags":"two"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","details":{"tags":["Expected number, received string"]}}`,
		},
		{
			name:       "malformed json",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","details":{"body":["Invalid JSON body"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			validatedRouter().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
