package domain

import (
	"errors"
	"time"
)

var (
	MessageFailedVerifyBatch  = "verification failed"
	MessageFailedGetAnalytics = "failed to fetch analytics"

	ErrVerificationFailed = errors.New("verification failed")
)

type (
	// VerifiedBatch carries the public fields of a batch; internal references
	// such as the producer id never leave the verification endpoint.
	VerifiedBatch struct {
		ID          string     `json:"id"`
		ProductName string     `json:"product_name"`
		ProductType string     `json:"product_type"`
		Quantity    float64    `json:"quantity"`
		Unit        string     `json:"unit"`
		HarvestDate *time.Time `json:"harvest_date,omitempty"`
		Location    string     `json:"location,omitempty"`
		Description string     `json:"description,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}

	VerifiedProducer struct {
		Name         string `json:"name"`
		Organization string `json:"organization,omitempty"`
		Phone        string `json:"phone,omitempty"`
	}

	VerificationResponse struct {
		Batch          VerifiedBatch           `json:"batch"`
		Producer       VerifiedProducer        `json:"producer"`
		Events         []EventResponse         `json:"events"` // oldest first, the journey order
		Certifications []CertificationResponse `json:"certifications"`
		TrustScore     int                     `json:"trust_score"`
		VerifiedAt     time.Time               `json:"verified_at"`
	}

	DailyScanCount struct {
		ScanDate   string `json:"scan_date"`
		TotalScans int64  `json:"total_scans"`
	}

	ScanAnalyticsResponse struct {
		TotalScans int64            `json:"total_scans"`
		DailyScans []DailyScanCount `json:"daily_scans"`
	}
)
