package entities

import (
	"github.com/google/uuid"
)

// Event is append-only: rows are only ever inserted, never updated or deleted.
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BatchID     uuid.UUID `gorm:"index" json:"batch_id"`
	EventType   string    `json:"event_type"` // "harvest", "processing", "transport", ...
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`

	Batch *Batch `gorm:"foreignKey:BatchID"`
	Timestamp
}
