package entities

import (
	"time"

	"github.com/google/uuid"
)

type Batch struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProducerID  uuid.UUID  `json:"producer_id"`
	ProductName string     `json:"product_name"`
	ProductType string     `json:"product_type"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	HarvestDate *time.Time `json:"harvest_date,omitempty"`
	Location    string     `json:"location,omitempty"`
	Description string     `json:"description,omitempty"`
	QRCode      string     `gorm:"uniqueIndex" json:"qr_code"`

	Producer *User `gorm:"foreignKey:ProducerID"`
	Timestamp
}
