package entities

import (
	"time"

	"github.com/google/uuid"
)

type OTPVerification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"index" json:"email,omitempty"`
	Phone     string    `gorm:"index" json:"phone,omitempty"`
	OTPCode   string    `json:"-"`
	OTPType   string    `json:"otp_type"` // "email", "sms"
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	Attempts  int       `gorm:"default:0" json:"attempts"`

	Timestamp
}
