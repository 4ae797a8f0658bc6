package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username      string    `gorm:"uniqueIndex" json:"username"`
	Email         string    `gorm:"uniqueIndex" json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Password      string    `json:"-"`
	Role          string    `gorm:"default:producer" json:"role"` // "producer", "buyer"
	Organization  string    `json:"organization,omitempty"`
	EmailVerified bool      `gorm:"default:false" json:"email_verified"`
	PhoneVerified bool      `gorm:"default:false" json:"phone_verified"`

	Timestamp
}
