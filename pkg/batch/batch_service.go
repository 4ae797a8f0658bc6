package batch

import (
	"agrisync-backend/domain"
	"agrisync-backend/entities"
	"agrisync-backend/internal/utils"
	"agrisync-backend/internal/utils/storage"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type (
	BatchService interface {
		CreateBatch(ctx context.Context, req domain.CreateBatchRequest, userID string) (domain.CreateBatchResponse, error)
		GetBatches(ctx context.Context, userID string) ([]domain.BatchResponse, error)
		GetBatchDetails(ctx context.Context, id string, userID string) (domain.BatchDetailsResponse, error)
		AddEvent(ctx context.Context, batchID string, req domain.AddEventRequest, userID string) (domain.EventResponse, error)
		AddCertification(ctx context.Context, batchID string, req domain.AddCertificationRequest, userID string) (domain.CertificationResponse, error)
		GetMarketplace(ctx context.Context) ([]domain.MarketplaceProductResponse, error)
	}

	batchService struct {
		batchRepository BatchRepository
		s3              storage.AwsS3
	}
)

func NewBatchService(batchRepository BatchRepository, s3 storage.AwsS3) BatchService {
	return &batchService{
		batchRepository: batchRepository,
		s3:              s3,
	}
}

func (s *batchService) CreateBatch(ctx context.Context, req domain.CreateBatchRequest, userID string) (domain.CreateBatchResponse, error) {
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateBatchResponse{}, domain.ErrParseUUID
	}

	var harvestDate *time.Time
	if req.HarvestDate != "" {
		parsed, err := time.Parse("2006-01-02", req.HarvestDate)
		if err != nil {
			return domain.CreateBatchResponse{}, domain.ErrInvalidHarvestDate
		}
		harvestDate = &parsed
	}

	batchID := uuid.New()
	qrData := fmt.Sprintf("%s/verify/%s", utils.GetConfig("APP_URL"), batchID.String())

	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		return domain.CreateBatchResponse{}, err
	}
	qrImage := "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrPNG)

	batch := &entities.Batch{
		ID:          batchID,
		ProducerID:  producerID,
		ProductName: req.ProductName,
		ProductType: req.ProductType,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		HarvestDate: harvestDate,
		Location:    req.Location,
		Description: req.Description,
		QRCode:      qrData,
	}

	if err := s.batchRepository.CreateBatch(ctx, batch); err != nil {
		return domain.CreateBatchResponse{}, err
	}

	// Initial harvest event. Failure here does not fail batch creation.
	harvestEvent := &entities.Event{
		ID:          uuid.New(),
		BatchID:     batchID,
		EventType:   "harvest",
		Description: fmt.Sprintf("Harvested %g %s of %s", req.Quantity, req.Unit, req.ProductName),
		Location:    req.Location,
	}
	if err := s.batchRepository.AppendEvent(ctx, harvestEvent); err != nil {
		log.Printf("Failed to create harvest event for batch %s: %v", batchID, err)
	}

	return domain.CreateBatchResponse{
		BatchResponse: toBatchResponse(batch),
		QRImage:       qrImage,
	}, nil
}

func (s *batchService) GetBatches(ctx context.Context, userID string) ([]domain.BatchResponse, error) {
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	batches, err := s.batchRepository.GetBatchesByProducer(ctx, producerID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.BatchResponse, 0, len(batches))
	for _, b := range batches {
		response = append(response, toBatchResponse(b))
	}
	return response, nil
}

func (s *batchService) GetBatchDetails(ctx context.Context, id string, userID string) (domain.BatchDetailsResponse, error) {
	batchID, err := uuid.Parse(id)
	if err != nil {
		return domain.BatchDetailsResponse{}, domain.ErrBatchNotFound
	}
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BatchDetailsResponse{}, domain.ErrParseUUID
	}

	batch, err := s.batchRepository.GetBatchByIDAndProducer(ctx, batchID, producerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BatchDetailsResponse{}, domain.ErrBatchNotFound
		}
		return domain.BatchDetailsResponse{}, err
	}

	// Dashboard view shows the most recent event first.
	events, err := s.batchRepository.ListEventsByBatch(ctx, batchID, "desc")
	if err != nil {
		return domain.BatchDetailsResponse{}, err
	}

	certs, err := s.batchRepository.ListCertificationsByBatch(ctx, batchID)
	if err != nil {
		return domain.BatchDetailsResponse{}, err
	}

	return domain.BatchDetailsResponse{
		BatchResponse:  toBatchResponse(batch),
		Events:         toEventResponses(events),
		Certifications: toCertificationResponses(certs),
	}, nil
}

func (s *batchService) AddEvent(ctx context.Context, batchID string, req domain.AddEventRequest, userID string) (domain.EventResponse, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return domain.EventResponse{}, domain.ErrBatchNotFound
	}
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.EventResponse{}, domain.ErrParseUUID
	}

	if _, err := s.batchRepository.GetBatchByIDAndProducer(ctx, id, producerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EventResponse{}, domain.ErrBatchNotFound
		}
		return domain.EventResponse{}, err
	}

	event := &entities.Event{
		ID:          uuid.New(),
		BatchID:     id,
		EventType:   req.EventType,
		Description: req.Description,
		Location:    req.Location,
	}

	if req.Photo != nil {
		fileName := fmt.Sprintf("event-%s", event.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.Photo, "events", storage.AllowImage...)
		if err != nil {
			return domain.EventResponse{}, err
		}
		event.PhotoURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.batchRepository.AppendEvent(ctx, event); err != nil {
		return domain.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

func (s *batchService) AddCertification(ctx context.Context, batchID string, req domain.AddCertificationRequest, userID string) (domain.CertificationResponse, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return domain.CertificationResponse{}, domain.ErrBatchNotFound
	}
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CertificationResponse{}, domain.ErrParseUUID
	}

	if _, err := s.batchRepository.GetBatchByIDAndProducer(ctx, id, producerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CertificationResponse{}, domain.ErrBatchNotFound
		}
		return domain.CertificationResponse{}, err
	}

	var issueDate, expiryDate *time.Time
	if req.IssueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.IssueDate)
		if err != nil {
			return domain.CertificationResponse{}, domain.ErrInvalidIssueDate
		}
		issueDate = &parsed
	}
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.CertificationResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	cert := &entities.Certification{
		ID:         uuid.New(),
		BatchID:    id,
		CertType:   req.CertType,
		CertNumber: req.CertNumber,
		Issuer:     req.Issuer,
		IssueDate:  issueDate,
		ExpiryDate: expiryDate,
	}

	if req.Document != nil {
		fileName := fmt.Sprintf("cert-%s", cert.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.Document, "certifications", storage.AllowDocument...)
		if err != nil {
			return domain.CertificationResponse{}, err
		}
		cert.DocumentURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.batchRepository.AppendCertification(ctx, cert); err != nil {
		return domain.CertificationResponse{}, err
	}

	return toCertificationResponse(cert), nil
}

func (s *batchService) GetMarketplace(ctx context.Context) ([]domain.MarketplaceProductResponse, error) {
	batches, err := s.batchRepository.GetMarketplaceBatches(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MarketplaceProductResponse, 0, len(batches))
	for _, b := range batches {
		product := domain.MarketplaceProductResponse{
			BatchResponse: toBatchResponse(b),
		}
		if b.Producer != nil {
			product.ProducerName = b.Producer.Username
			product.Organization = b.Producer.Organization
			product.ProducerEmail = b.Producer.Email
			product.ProducerPhone = b.Producer.Phone
		}
		response = append(response, product)
	}
	return response, nil
}

func toBatchResponse(batch *entities.Batch) domain.BatchResponse {
	return domain.BatchResponse{
		ID:          batch.ID.String(),
		ProductName: batch.ProductName,
		ProductType: batch.ProductType,
		Quantity:    batch.Quantity,
		Unit:        batch.Unit,
		HarvestDate: batch.HarvestDate,
		Location:    batch.Location,
		Description: batch.Description,
		QRCode:      batch.QRCode,
		CreatedAt:   batch.CreatedAt,
	}
}

func toEventResponse(event *entities.Event) domain.EventResponse {
	return domain.EventResponse{
		ID:          event.ID.String(),
		BatchID:     event.BatchID.String(),
		EventType:   event.EventType,
		Description: event.Description,
		Location:    event.Location,
		PhotoURL:    event.PhotoURL,
		Timestamp:   event.CreatedAt,
	}
}

func toEventResponses(events []*entities.Event) []domain.EventResponse {
	response := make([]domain.EventResponse, 0, len(events))
	for _, e := range events {
		response = append(response, toEventResponse(e))
	}
	return response
}

func toCertificationResponse(cert *entities.Certification) domain.CertificationResponse {
	return domain.CertificationResponse{
		ID:          cert.ID.String(),
		BatchID:     cert.BatchID.String(),
		CertType:    cert.CertType,
		CertNumber:  cert.CertNumber,
		Issuer:      cert.Issuer,
		IssueDate:   cert.IssueDate,
		ExpiryDate:  cert.ExpiryDate,
		DocumentURL: cert.DocumentURL,
	}
}

func toCertificationResponses(certs []*entities.Certification) []domain.CertificationResponse {
	response := make([]domain.CertificationResponse, 0, len(certs))
	for _, c := range certs {
		response = append(response, toCertificationResponse(c))
	}
	return response
}
