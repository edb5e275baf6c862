package auth

import "strings"

// login request payload
type LoginSchema struct {
	Email    string `json:"email" validate:"required,email" label:"email"`
	Password string `json:"password" validate:"required" label:"password"`
}

func (s *LoginSchema) Normalize() {
	s.Email = strings.TrimSpace(s.Email)
}

// logout and refresh request payload
type TokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}
