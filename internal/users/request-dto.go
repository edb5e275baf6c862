package users

import "strings"

// registration payload
type CreateUserSchema struct {
	Fullname string `json:"fullname" validate:"required,min=3,fullname" label:"name"`
	Email    string `json:"email" validate:"required,email" label:"email"`
	Password string `json:"password" validate:"required,min=6,password" label:"password"`
	Role     string `json:"role" validate:"required,oneof=admin user" label:"role"`
	Phone    string `json:"phone" validate:"required" label:"phone"`
}

func (s *CreateUserSchema) Normalize() {
	s.Fullname = strings.TrimSpace(s.Fullname)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
}
