package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderNumber  string     `gorm:"uniqueIndex" json:"order_number"`
	ProducerID   uuid.UUID  `json:"producer_id"`
	BuyerName    string     `json:"buyer_name"`
	BuyerEmail   string     `json:"buyer_email,omitempty"`
	BuyerPhone   string     `json:"buyer_phone,omitempty"`
	Status       string     `gorm:"default:pending" json:"status"` // "pending", "processing", "shipped", "delivered", "cancelled"
	TotalAmount  float64    `json:"total_amount"`
	TrackingID   string     `json:"tracking_id,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`

	Producer *User        `gorm:"foreignKey:ProducerID"`
	Items    []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

type OrderItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID      uuid.UUID  `gorm:"index" json:"order_id"`
	BatchID      *uuid.UUID `json:"batch_id,omitempty"`
	ProductName  string     `json:"product_name"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	PricePerUnit float64    `json:"price_per_unit"`

	Batch *Batch `gorm:"foreignKey:BatchID"`
	Timestamp
}
