package entities

import (
	"github.com/google/uuid"
)

type QuoteRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Producer    string    `json:"producer"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Quantity    float64   `json:"quantity"`
	Message     string    `json:"message,omitempty"`
	Status      string    `gorm:"default:pending" json:"status"` // "pending", "responded", "closed"

	Product *Batch `gorm:"foreignKey:ProductID"`
	Timestamp
}
