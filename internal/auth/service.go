package auth

import (
	"context"
	"errors"
	"fmt"

	"triply/internal/audit"
	"triply/internal/tokens"
	"triply/internal/users"
	"triply/pkg/metrics"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
)

// UserFinder looks users up by email
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*users.User, error)
}

// PasswordVerifier compares a plaintext password with a stored digest
type PasswordVerifier interface {
	Verify(plain, digest string) bool
}

type Service interface {
	Login(ctx context.Context, req *LoginSchema) (*tokens.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (*tokens.TokenPair, error)
}

type service struct {
	users    UserFinder
	verifier PasswordVerifier
	tokens   tokens.Service
	audit    *audit.Recorder
	metrics  *metrics.Metrics
}

func NewService(users UserFinder, verifier PasswordVerifier, tokenService tokens.Service, recorder *audit.Recorder, m *metrics.Metrics) Service {
	return &service{
		users:    users,
		verifier: verifier,
		tokens:   tokenService,
		audit:    recorder,
		metrics:  m,
	}
}

func (s *service) Login(ctx context.Context, req *LoginSchema) (*tokens.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.metrics.AuthFailure("unknown_email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.verifier.Verify(req.Password, user.Password) {
		s.metrics.AuthFailure("invalid_password")
		return nil, ErrInvalidPassword
	}

	// every login gets its own refresh token so devices stay independent
	pair, err := s.tokens.IssuePair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	s.metrics.TokenIssued(tokens.TypeAccess)
	s.metrics.TokenIssued(tokens.TypeRefresh)

	s.audit.Record(ctx, audit.NewEvent(audit.EventUserLoggedIn, user.ID.String()))
	return pair, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.NewEvent(audit.EventTokenRevoked, ""))
	return nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*tokens.TokenPair, error) {
	pair, err := s.tokens.Refresh(ctx, refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, tokens.ErrRefreshNotFound):
			s.metrics.AuthFailure("refresh_not_found")
		case errors.Is(err, tokens.ErrRefreshRejected):
			s.metrics.AuthFailure("refresh_rejected")
		}
		return nil, err
	}
	s.metrics.TokenIssued(tokens.TypeAccess)
	s.metrics.TokenIssued(tokens.TypeRefresh)

	s.audit.Record(ctx, audit.NewEvent(audit.EventTokenRefreshed, pair.UserID.String()))
	return pair, nil
}
