package quote

import (
	"agrisync-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	QuoteRepository interface {
		CreateQuote(ctx context.Context, quote *entities.QuoteRequest) error
		GetQuotesByProducer(ctx context.Context, producer string) ([]*entities.QuoteRequest, error)
	}

	quoteRepository struct {
		db *gorm.DB
	}
)

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) CreateQuote(ctx context.Context, quote *entities.QuoteRequest) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) GetQuotesByProducer(ctx context.Context, producer string) ([]*entities.QuoteRequest, error) {
	var quotes []*entities.QuoteRequest
	if err := r.db.WithContext(ctx).
		Where("producer = ?", producer).
		Order("created_at desc").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}
