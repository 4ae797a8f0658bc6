package verify

import (
	"agrisync-backend/domain"
	"agrisync-backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VerifyRepository interface {
		GetBatchWithProducer(ctx context.Context, batchID uuid.UUID) (*entities.Batch, error)
		RecordScan(ctx context.Context, scan *entities.QRScan) error
		CountScansByBatch(ctx context.Context, batchID uuid.UUID) (int64, error)
		ListDailyScanCounts(ctx context.Context, batchID uuid.UUID) ([]domain.DailyScanCount, error)
	}

	verifyRepository struct {
		db *gorm.DB
	}
)

func NewVerifyRepository(db *gorm.DB) VerifyRepository {
	return &verifyRepository{db: db}
}

func (r *verifyRepository) GetBatchWithProducer(ctx context.Context, batchID uuid.UUID) (*entities.Batch, error) {
	var batch entities.Batch
	if err := r.db.WithContext(ctx).
		Preload("Producer").
		Where("id = ?", batchID).
		First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *verifyRepository) RecordScan(ctx context.Context, scan *entities.QRScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *verifyRepository) CountScansByBatch(ctx context.Context, batchID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.QRScan{}).
		Where("batch_id = ?", batchID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *verifyRepository) ListDailyScanCounts(ctx context.Context, batchID uuid.UUID) ([]domain.DailyScanCount, error) {
	var counts []domain.DailyScanCount
	if err := r.db.WithContext(ctx).Model(&entities.QRScan{}).
		Select("to_char(created_at, 'YYYY-MM-DD') as scan_date, count(*) as total_scans").
		Where("batch_id = ?", batchID).
		Group("to_char(created_at, 'YYYY-MM-DD')").
		Order("scan_date desc").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
