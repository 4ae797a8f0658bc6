package batch

import (
	"agrisync-backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BatchRepository interface {
		CreateBatch(ctx context.Context, batch *entities.Batch) error
		GetBatchByIDAndProducer(ctx context.Context, id, producerID uuid.UUID) (*entities.Batch, error)
		GetBatchesByProducer(ctx context.Context, producerID uuid.UUID) ([]*entities.Batch, error)
		GetMarketplaceBatches(ctx context.Context) ([]*entities.Batch, error)

		AppendEvent(ctx context.Context, event *entities.Event) error
		ListEventsByBatch(ctx context.Context, batchID uuid.UUID, order string) ([]*entities.Event, error)

		AppendCertification(ctx context.Context, cert *entities.Certification) error
		ListCertificationsByBatch(ctx context.Context, batchID uuid.UUID) ([]*entities.Certification, error)
	}

	batchRepository struct {
		db *gorm.DB
	}
)

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) CreateBatch(ctx context.Context, batch *entities.Batch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *batchRepository) GetBatchByIDAndProducer(ctx context.Context, id, producerID uuid.UUID) (*entities.Batch, error) {
	var batch entities.Batch
	if err := r.db.WithContext(ctx).
		Where("id = ? AND producer_id = ?", id, producerID).
		First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) GetBatchesByProducer(ctx context.Context, producerID uuid.UUID) ([]*entities.Batch, error) {
	var batches []*entities.Batch
	if err := r.db.WithContext(ctx).
		Where("producer_id = ?", producerID).
		Order("created_at desc").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *batchRepository) GetMarketplaceBatches(ctx context.Context) ([]*entities.Batch, error) {
	var batches []*entities.Batch
	if err := r.db.WithContext(ctx).
		Preload("Producer").
		Order("created_at desc").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *batchRepository) AppendEvent(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListEventsByBatch returns a batch's events ordered by creation time. The
// producer dashboard reads "desc" (newest first); the public verification
// path reads "asc" (the chronological journey). The two orderings are
// deliberately distinct.
func (r *batchRepository) ListEventsByBatch(ctx context.Context, batchID uuid.UUID, order string) ([]*entities.Event, error) {
	if order != "asc" {
		order = "desc"
	}

	var events []*entities.Event
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("created_at " + order).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *batchRepository) AppendCertification(ctx context.Context, cert *entities.Certification) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

func (r *batchRepository) ListCertificationsByBatch(ctx context.Context, batchID uuid.UUID) ([]*entities.Certification, error) {
	var certs []*entities.Certification
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}
