package quote

import (
	"agrisync-backend/domain"
	"agrisync-backend/entities"
	"context"

	"github.com/google/uuid"
)

type (
	QuoteService interface {
		CreateQuote(ctx context.Context, req domain.CreateQuoteRequest) (domain.CreateQuoteResponse, error)
		GetQuotesByProducer(ctx context.Context, producer string) ([]domain.QuoteResponse, error)
	}

	quoteService struct {
		quoteRepository QuoteRepository
	}
)

func NewQuoteService(quoteRepository QuoteRepository) QuoteService {
	return &quoteService{quoteRepository: quoteRepository}
}

func (s *quoteService) CreateQuote(ctx context.Context, req domain.CreateQuoteRequest) (domain.CreateQuoteResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domain.CreateQuoteResponse{}, domain.ErrParseUUID
	}

	quote := &entities.QuoteRequest{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: req.ProductName,
		Producer:    req.Producer,
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Quantity:    req.Quantity,
		Message:     req.Message,
		Status:      "pending",
	}

	if err := s.quoteRepository.CreateQuote(ctx, quote); err != nil {
		return domain.CreateQuoteResponse{}, err
	}

	return domain.CreateQuoteResponse{
		QuoteID: quote.ID.String(),
		Status:  quote.Status,
	}, nil
}

func (s *quoteService) GetQuotesByProducer(ctx context.Context, producer string) ([]domain.QuoteResponse, error) {
	quotes, err := s.quoteRepository.GetQuotesByProducer(ctx, producer)
	if err != nil {
		return nil, err
	}

	response := make([]domain.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		response = append(response, domain.QuoteResponse{
			ID:          q.ID.String(),
			ProductID:   q.ProductID.String(),
			ProductName: q.ProductName,
			Producer:    q.Producer,
			CompanyName: q.CompanyName,
			ContactName: q.ContactName,
			Email:       q.Email,
			Phone:       q.Phone,
			Quantity:    q.Quantity,
			Message:     q.Message,
			Status:      q.Status,
			CreatedAt:   q.CreatedAt,
		})
	}
	return response, nil
}
