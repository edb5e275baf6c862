package users

import (
	"context"
	"errors"
	"fmt"

	"triply/internal/audit"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailInUse   = errors.New("email already in use")
)

// PasswordHasher hashes plaintext passwords
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type Service interface {
	Register(ctx context.Context, req *CreateUserSchema) (*User, error)
	Profile(ctx context.Context, userID uuid.UUID) (*User, error)
}

type service struct {
	repo   Repository
	hasher PasswordHasher
	audit  *audit.Recorder
}

func NewService(repo Repository, hasher PasswordHasher, recorder *audit.Recorder) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
		audit:  recorder,
	}
}

func (s *service) Register(ctx context.Context, req *CreateUserSchema) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailInUse
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: hashed,
		Role:     Role(req.Role),
		Phone:    req.Phone,
	}

	// a concurrent registration can still win the unique index
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEvent(audit.EventUserRegistered, user.ID.String()).
		WithAttribute("role", string(user.Role)))

	return user, nil
}

func (s *service) Profile(ctx context.Context, userID uuid.UUID) (*User, error) {
	return s.repo.GetWithItineraries(ctx, userID)
}
