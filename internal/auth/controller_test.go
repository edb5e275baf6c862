package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"triply/internal/audit"
	"triply/internal/shared/config"
	"triply/internal/shared/database"
	"triply/internal/shared/middleware"
	"triply/internal/shared/password"
	"triply/internal/shared/validation"
	"triply/internal/tokens"
	"triply/internal/users"
	"triply/pkg/logger"
	"triply/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUsers struct {
	mu    sync.RWMutex
	users map[string]users.User
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*users.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[email]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return &u, nil
}

type memStore struct {
	mu     sync.Mutex
	tokens map[string]tokens.RefreshToken
}

func (m *memStore) Create(_ context.Context, rt *tokens.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[rt.Token]; ok {
		return database.ErrDuplicate
	}
	m.tokens[rt.Token] = *rt
	return nil
}

func (m *memStore) FindByToken(_ context.Context, token string) (*tokens.RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rt, ok := m.tokens[token]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &rt, nil
}

func (m *memStore) Delete(_ context.Context, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[token]; !ok {
		return 0, nil
	}
	delete(m.tokens, token)
	return 1, nil
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokens)
}

type testEnv struct {
	router  *gin.Engine
	store   *memStore
	tokens  tokens.Service
	metrics *metrics.Metrics
	user    users.User
	now     time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.Nop()
	hasher := password.NewHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("Abcdef1")
	require.NoError(t, err)
	user := users.User{ID: uuid.New(), Fullname: "Ann Lee", Email: "ann@example.com", Password: digest, Role: users.RoleUser}

	env := &testEnv{
		store: &memStore{tokens: make(map[string]tokens.RefreshToken)},
		user:  user,
		now:   time.Now(),
	}
	env.tokens = tokens.NewService(env.store, config.JWTConfig{
		Secret:           "access-secret",
		RefreshSecret:    "refresh-secret",
		JWTExpiresIn:     time.Hour,
		RefreshExpiresIn: 7 * 24 * time.Hour,
	}, tokens.WithClock(func() time.Time { return env.now }))

	reg := prometheus.NewRegistry()
	env.metrics, err = metrics.New("triply", reg, reg)
	require.NoError(t, err)

	finder := &fakeUsers{users: map[string]users.User{user.Email: user}}
	svc := NewService(finder, hasher, env.tokens, audit.NewRecorder(audit.NopPublisher{}, log), env.metrics)

	env.router = gin.New()
	NewRouter(NewController(svc, log), validation.New(), middleware.AuthGate(env.tokens, log)).SetupRoutes(&env.router.RouterGroup)
	return env
}

func (e *testEnv) do(method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) tokens.TokenPair {
	t.Helper()
	rec := e.do(http.MethodPost, "/users/login", `{"email":"ann@example.com","password":"Abcdef1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var pair tokens.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

func tokenBody(token string) string {
	return `{"refreshToken":"` + token + `"}`
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown email",
			body:       `{"email":"nobody@example.com","password":"Abcdef1"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name:       "wrong password",
			body:       `{"email":"ann@example.com","password":"Abcdef2"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid password"}`,
		},
		{
			name:       "invalid email",
			body:       `{"email":"ann","password":"Abcdef1"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","details":{"email":["Invalid email address"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(http.MethodPost, "/users/login", tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Zero(t, env.store.len())
		})
	}
}

func TestLogin_IssuesPairPerLogin(t *testing.T) {
	env := newTestEnv(t)

	first := env.login(t)
	second := env.login(t)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, 2, env.store.len())

	claims, err := env.tokens.VerifyAccess(first.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, env.user.ID.String(), claims.UserID)
	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.TokensIssued.WithLabelValues(tokens.TypeRefresh)))
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	pair := env.login(t)

	t.Run("missing token", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/users/logout", `{}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Refresh token not provided"}`, rec.Body.String())
	})

	t.Run("revokes", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/users/logout", tokenBody(pair.RefreshToken), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Logout successful"}`, rec.Body.String())
		assert.Zero(t, env.store.len())
	})

	t.Run("revoked token cannot refresh", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/users/refresh-token", tokenBody(pair.RefreshToken), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Refresh token not found"}`, rec.Body.String())
	})

	t.Run("idempotent", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/users/logout", tokenBody(pair.RefreshToken), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/users/refresh-token", ``, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Refresh token not provided"}`, rec.Body.String())
	})

	t.Run("unknown token", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/users/refresh-token", tokenBody("not-a-token"), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Refresh token not found"}`, rec.Body.String())
	})

	t.Run("rotates", func(t *testing.T) {
		env := newTestEnv(t)
		pair := env.login(t)

		rec := env.do(http.MethodPost, "/users/refresh-token", tokenBody(pair.RefreshToken), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var next tokens.TokenPair
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &next))
		assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)
		assert.Equal(t, 1, env.store.len())

		rec = env.do(http.MethodPost, "/users/refresh-token", tokenBody(pair.RefreshToken), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("expired", func(t *testing.T) {
		env := newTestEnv(t)
		pair := env.login(t)
		env.now = env.now.Add(8 * 24 * time.Hour)

		rec := env.do(http.MethodPost, "/users/refresh-token", tokenBody(pair.RefreshToken), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Token expired or invalid"}`, rec.Body.String())
		assert.Zero(t, env.store.len())
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.AuthFailures.WithLabelValues("refresh_rejected")))
	})
}

func TestProtected(t *testing.T) {
	env := newTestEnv(t)
	pair := env.login(t)

	rec := env.do(http.MethodGet, "/protected", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodGet, "/protected", "", "garbage")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/protected", "", pair.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var body ProtectedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "You are authenticated!", body.Message)
	assert.Equal(t, env.user.ID, body.User.UserID)
	assert.Equal(t, env.user.Email, body.User.Email)
}
