package users

import "time"

// user data in responses, never the password hash
type UserResponse struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// the authenticated user with the itineraries they own
type ProfileResponse struct {
	UserResponse
	Itineraries []OwnedItinerary `json:"itineraries"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Fullname:  u.Fullname,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToProfileResponse(u *User) ProfileResponse {
	itineraries := u.Itineraries
	if itineraries == nil {
		itineraries = []OwnedItinerary{}
	}
	return ProfileResponse{
		UserResponse: ToUserResponse(u),
		Itineraries:  itineraries,
	}
}
