package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID          uuid.UUID        `json:"id" gorm:"primaryKey;type:uuid"`
	Fullname    string           `json:"fullname" gorm:"not null"`
	Email       string           `json:"email" gorm:"uniqueIndex;not null"`
	Password    string           `json:"-" gorm:"not null"` // hide in json
	Role        Role             `json:"role" gorm:"type:varchar(16);not null"`
	Phone       string           `json:"phone"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Itineraries []OwnedItinerary `json:"-" gorm:"foreignKey:UserID;-:migration"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// OwnedItinerary is the read-only view of an itinerary listed on its owner's profile
type OwnedItinerary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Cover     *string   `json:"cover"`
	Popular   bool      `json:"popular"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OwnedItinerary) TableName() string {
	return "itineraries"
}

func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
