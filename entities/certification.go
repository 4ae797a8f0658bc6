package entities

import (
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BatchID     uuid.UUID  `gorm:"index" json:"batch_id"`
	CertType    string     `json:"cert_type"`
	CertNumber  string     `json:"cert_number,omitempty"`
	Issuer      string     `json:"issuer"`
	IssueDate   *time.Time `json:"issue_date,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	DocumentURL string     `json:"document_url,omitempty"`

	Batch *Batch `gorm:"foreignKey:BatchID"`
	Timestamp
}
