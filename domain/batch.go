package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateBatch      = "batch created successfully"
	MessageSuccessGetBatches       = "batches retrieved successfully"
	MessageSuccessGetBatchDetails  = "batch details retrieved successfully"
	MessageSuccessAddEvent         = "event added successfully"
	MessageSuccessAddCertification = "certification added successfully"
	MessageSuccessGetMarketplace   = "marketplace products retrieved successfully"

	MessageFailedCreateBatch      = "failed to create batch"
	MessageFailedGetBatches       = "failed to retrieve batches"
	MessageFailedGetBatchDetails  = "failed to retrieve batch details"
	MessageFailedAddEvent         = "failed to add event"
	MessageFailedAddCertification = "failed to add certification"
	MessageFailedGetMarketplace   = "failed to retrieve marketplace products"
	MessageFailedGenerateQRCode   = "failed to generate QR code"

	ErrBatchNotFound      = errors.New("batch not found")
	ErrInvalidHarvestDate = errors.New("invalid harvest date")
	ErrInvalidIssueDate   = errors.New("invalid issue date")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
)

type (
	CreateBatchRequest struct {
		ProductName string  `json:"product_name" validate:"required"`
		ProductType string  `json:"product_type" validate:"required"`
		Quantity    float64 `json:"quantity" validate:"required,gt=0"`
		Unit        string  `json:"unit" validate:"required"`
		HarvestDate string  `json:"harvest_date" validate:"omitempty"`
		Location    string  `json:"location" validate:"omitempty"`
		Description string  `json:"description" validate:"omitempty"`
	}

	BatchResponse struct {
		ID          string     `json:"id"`
		ProductName string     `json:"product_name"`
		ProductType string     `json:"product_type"`
		Quantity    float64    `json:"quantity"`
		Unit        string     `json:"unit"`
		HarvestDate *time.Time `json:"harvest_date,omitempty"`
		Location    string     `json:"location,omitempty"`
		Description string     `json:"description,omitempty"`
		QRCode      string     `json:"qr_code"`
		CreatedAt   time.Time  `json:"created_at"`
	}

	CreateBatchResponse struct {
		BatchResponse
		QRImage string `json:"qr_image"` // base64 PNG data URL
	}

	AddEventRequest struct {
		EventType   string                `json:"event_type" form:"event_type" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Location    string                `json:"location" form:"location" validate:"omitempty"`
		Photo       *multipart.FileHeader `json:"photo" form:"photo" validate:"omitempty"`
	}

	EventResponse struct {
		ID          string    `json:"id"`
		BatchID     string    `json:"batch_id"`
		EventType   string    `json:"event_type"`
		Description string    `json:"description"`
		Location    string    `json:"location,omitempty"`
		PhotoURL    string    `json:"photo_url,omitempty"`
		Timestamp   time.Time `json:"timestamp"`
	}

	AddCertificationRequest struct {
		CertType   string                `json:"cert_type" form:"cert_type" validate:"required"`
		CertNumber string                `json:"cert_number" form:"cert_number" validate:"omitempty"`
		Issuer     string                `json:"issuer" form:"issuer" validate:"required"`
		IssueDate  string                `json:"issue_date" form:"issue_date" validate:"omitempty"`
		ExpiryDate string                `json:"expiry_date" form:"expiry_date" validate:"omitempty"`
		Document   *multipart.FileHeader `json:"document" form:"document" validate:"omitempty"`
	}

	CertificationResponse struct {
		ID          string     `json:"id"`
		BatchID     string     `json:"batch_id"`
		CertType    string     `json:"cert_type"`
		CertNumber  string     `json:"cert_number,omitempty"`
		Issuer      string     `json:"issuer"`
		IssueDate   *time.Time `json:"issue_date,omitempty"`
		ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
		DocumentURL string     `json:"document_url,omitempty"`
	}

	BatchDetailsResponse struct {
		BatchResponse
		Events         []EventResponse         `json:"events"` // newest first
		Certifications []CertificationResponse `json:"certifications"`
	}

	MarketplaceProductResponse struct {
		BatchResponse
		ProducerName  string `json:"producer_name"`
		Organization  string `json:"organization,omitempty"`
		ProducerEmail string `json:"producer_email,omitempty"`
		ProducerPhone string `json:"producer_phone,omitempty"`
	}
)
