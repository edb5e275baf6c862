package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"triply/internal/shared/config"
	"triply/internal/shared/database"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrRefreshNotFound = errors.New("refresh token not found")
	ErrRefreshRejected = errors.New("refresh token expired or invalid")
)

// Service issues, verifies, rotates and revokes tokens
type Service interface {
	IssueAccess(userID uuid.UUID, email string) (string, error)
	VerifyAccess(token string) (*AccessClaims, error)
	IssueRefresh(ctx context.Context, userID uuid.UUID, email string) (string, error)
	IssuePair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)
	Refresh(ctx context.Context, token string) (*TokenPair, error)
	Revoke(ctx context.Context, token string) error
}

// Option configures the service
type Option func(*service)

// WithClock replaces time.Now for issuing and expiry checks
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	store         RefreshStore
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// NewService creates a token service backed by store
func NewService(store RefreshStore, cfg config.JWTConfig, opts ...Option) Service {
	s := &service{
		store:         store,
		accessSecret:  []byte(cfg.Secret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.JWTExpiresIn,
		refreshTTL:    cfg.RefreshExpiresIn,
		issuer:        cfg.Issuer,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) registered(userID uuid.UUID, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *service) IssueAccess(userID uuid.UUID, email string) (string, error) {
	claims := AccessClaims{
		UserID:           userID.String(),
		Email:            email,
		Type:             TypeAccess,
		RegisteredClaims: s.registered(userID, s.accessTTL),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func (s *service) VerifyAccess(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(token, s.accessSecret, claims); err != nil {
		return nil, err
	}
	if claims.Type != TypeAccess {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyExpiresAt(s.now(), true) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// parse checks signature and algorithm only. Expiry is checked by the
// caller against the service clock.
func (s *service) parse(token string, secret []byte, claims jwt.Claims) error {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return ErrInvalidToken
	}
	return nil
}

func (s *service) IssueRefresh(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	claims := RefreshClaims{
		UserID:           userID.String(),
		Email:            email,
		Type:             TypeRefresh,
		RegisteredClaims: s.registered(userID, s.refreshTTL),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}

	rt := &RefreshToken{
		UserID:    userID,
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.store.Create(ctx, rt); err != nil {
		return "", fmt.Errorf("persist refresh token: %w", err)
	}
	return signed, nil
}

func (s *service) IssuePair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error) {
	access, err := s.IssueAccess(userID, email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.IssueRefresh(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, UserID: userID}, nil
}

// Refresh redeems a stored refresh token exactly once and returns a new
// pair. Stored tokens that fail verification are purged. The new pair is
// persisted before the old token is consumed, so a failed re-issue leaves
// the caller's session intact.
func (s *service) Refresh(ctx context.Context, token string) (*TokenPair, error) {
	stored, err := s.store.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrRefreshNotFound
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	claims := &RefreshClaims{}
	valid := s.parse(token, s.refreshSecret, claims) == nil &&
		claims.Type == TypeRefresh &&
		claims.UserID == stored.UserID.String() &&
		claims.VerifyExpiresAt(s.now(), true) &&
		s.now().Before(stored.ExpiresAt)
	if !valid {
		if _, err := s.store.Delete(ctx, token); err != nil {
			return nil, fmt.Errorf("purge rejected refresh token: %w", err)
		}
		return nil, ErrRefreshRejected
	}

	pair, err := s.IssuePair(ctx, stored.UserID, claims.Email)
	if err != nil {
		return nil, err
	}

	n, err := s.store.Delete(ctx, token)
	if err != nil || n == 0 {
		// drop the replacement so only one redemption ever yields a session
		if _, revokeErr := s.store.Delete(ctx, pair.RefreshToken); revokeErr != nil && err == nil {
			err = revokeErr
		}
		if err != nil {
			return nil, fmt.Errorf("consume refresh token: %w", err)
		}
		return nil, ErrRefreshNotFound
	}
	return pair, nil
}

func (s *service) Revoke(ctx context.Context, token string) error {
	if _, err := s.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}
