package entities

import (
	"github.com/google/uuid"
)

// QRScan records one public verification read. Write-only analytics trail.
type QRScan struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BatchID         uuid.UUID `gorm:"index" json:"batch_id"`
	ScannerIP       string    `json:"scanner_ip,omitempty"`
	ScannerLocation string    `json:"scanner_location,omitempty"`

	Batch *Batch `gorm:"foreignKey:BatchID"`
	Timestamp
}
