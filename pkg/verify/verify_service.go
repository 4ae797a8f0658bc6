package verify

import (
	"agrisync-backend/domain"
	"agrisync-backend/entities"
	"agrisync-backend/pkg/batch"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VerifyService interface {
		Verify(ctx context.Context, batchID string, scannerIP string) (domain.VerificationResponse, error)
		GetScanAnalytics(ctx context.Context, batchID string) (domain.ScanAnalyticsResponse, error)
	}

	verifyService struct {
		verifyRepository VerifyRepository
		batchRepository  batch.BatchRepository
	}
)

func NewVerifyService(verifyRepository VerifyRepository, batchRepository batch.BatchRepository) VerifyService {
	return &verifyService{
		verifyRepository: verifyRepository,
		batchRepository:  batchRepository,
	}
}

// Verify is the public read path behind a scanned QR code. It resolves the
// batch together with its producer, assembles the journey (events oldest
// first) and certifications, records the scan, and computes the trust score
// from the evidence it just fetched. The scan record is best effort: its
// failure never fails the verification.
func (s *verifyService) Verify(ctx context.Context, batchID string, scannerIP string) (domain.VerificationResponse, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return domain.VerificationResponse{}, domain.ErrBatchNotFound
	}

	b, err := s.verifyRepository.GetBatchWithProducer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VerificationResponse{}, domain.ErrBatchNotFound
		}
		return domain.VerificationResponse{}, err
	}

	events, err := s.batchRepository.ListEventsByBatch(ctx, id, "asc")
	if err != nil {
		return domain.VerificationResponse{}, err
	}

	certs, err := s.batchRepository.ListCertificationsByBatch(ctx, id)
	if err != nil {
		return domain.VerificationResponse{}, err
	}

	scan := &entities.QRScan{
		ID:        uuid.New(),
		BatchID:   id,
		ScannerIP: scannerIP,
	}
	if err := s.verifyRepository.RecordScan(ctx, scan); err != nil {
		log.Printf("Failed to record scan for batch %s: %v", batchID, err)
	}

	trustScore := ComputeTrustScore(events, certs)

	response := domain.VerificationResponse{
		Batch: domain.VerifiedBatch{
			ID:          b.ID.String(),
			ProductName: b.ProductName,
			ProductType: b.ProductType,
			Quantity:    b.Quantity,
			Unit:        b.Unit,
			HarvestDate: b.HarvestDate,
			Location:    b.Location,
			Description: b.Description,
			CreatedAt:   b.CreatedAt,
		},
		Events:         make([]domain.EventResponse, 0, len(events)),
		Certifications: make([]domain.CertificationResponse, 0, len(certs)),
		TrustScore:     trustScore,
		VerifiedAt:     time.Now().UTC(),
	}

	if b.Producer != nil {
		response.Producer = domain.VerifiedProducer{
			Name:         b.Producer.Username,
			Organization: b.Producer.Organization,
			Phone:        b.Producer.Phone,
		}
	}

	for _, e := range events {
		response.Events = append(response.Events, domain.EventResponse{
			ID:          e.ID.String(),
			BatchID:     e.BatchID.String(),
			EventType:   e.EventType,
			Description: e.Description,
			Location:    e.Location,
			PhotoURL:    e.PhotoURL,
			Timestamp:   e.CreatedAt,
		})
	}

	for _, c := range certs {
		response.Certifications = append(response.Certifications, domain.CertificationResponse{
			ID:          c.ID.String(),
			BatchID:     c.BatchID.String(),
			CertType:    c.CertType,
			CertNumber:  c.CertNumber,
			Issuer:      c.Issuer,
			IssueDate:   c.IssueDate,
			ExpiryDate:  c.ExpiryDate,
			DocumentURL: c.DocumentURL,
		})
	}

	return response, nil
}

func (s *verifyService) GetScanAnalytics(ctx context.Context, batchID string) (domain.ScanAnalyticsResponse, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return domain.ScanAnalyticsResponse{}, domain.ErrBatchNotFound
	}

	daily, err := s.verifyRepository.ListDailyScanCounts(ctx, id)
	if err != nil {
		return domain.ScanAnalyticsResponse{}, err
	}

	total, err := s.verifyRepository.CountScansByBatch(ctx, id)
	if err != nil {
		return domain.ScanAnalyticsResponse{}, err
	}

	return domain.ScanAnalyticsResponse{
		TotalScans: total,
		DailyScans: daily,
	}, nil
}
