package midtrans

import (
	"agrisync-backend/domain"
	"agrisync-backend/internal/utils"
	"agrisync-backend/pkg/order"
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreateOrderPayment(ctx context.Context, orderID string, userID string) (domain.OrderPaymentResponse, error)
		HandleNotification(ctx context.Context, payload map[string]interface{}) error
	}

	midtransService struct {
		orderRepository order.OrderRepository
		snapClient      snap.Client
		coreClient      coreapi.Client
	}
)

func NewMidtransService(orderRepository order.OrderRepository) MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	s := &midtransService{orderRepository: orderRepository}
	s.snapClient.New(utils.GetConfig("SERVER_KEY"), env)
	s.coreClient.New(utils.GetConfig("SERVER_KEY"), env)
	return s
}

func (s *midtransService) CreateOrderPayment(ctx context.Context, orderID string, userID string) (domain.OrderPaymentResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return domain.OrderPaymentResponse{}, domain.ErrOrderNotFound
	}
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderPaymentResponse{}, domain.ErrParseUUID
	}

	o, err := s.orderRepository.GetOrderByIDAndProducer(ctx, id, producerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderPaymentResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderPaymentResponse{}, err
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  o.OrderNumber,
			GrossAmt: int64(o.TotalAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: o.BuyerName,
			Email: o.BuyerEmail,
			Phone: o.BuyerPhone,
		},
	}

	resp, snapErr := s.snapClient.CreateTransaction(req)
	if snapErr != nil {
		return domain.OrderPaymentResponse{}, snapErr
	}

	return domain.OrderPaymentResponse{
		OrderID:     o.ID.String(),
		OrderNumber: o.OrderNumber,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// HandleNotification processes the Midtrans webhook. The transaction status
// is re-checked against the Midtrans API rather than trusted from the
// payload.
func (s *midtransService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	orderNumber, ok := payload["order_id"].(string)
	if !ok || orderNumber == "" {
		return domain.ErrOrderNotFound
	}

	status, checkErr := s.coreClient.CheckTransaction(orderNumber)
	if checkErr != nil {
		return checkErr
	}
	if status == nil {
		return domain.ErrOrderNotFound
	}

	switch status.TransactionStatus {
	case "capture":
		if status.FraudStatus == "accept" {
			return s.orderRepository.UpdateStatusByNumber(ctx, orderNumber, "processing")
		}
	case "settlement":
		return s.orderRepository.UpdateStatusByNumber(ctx, orderNumber, "processing")
	case "cancel", "deny", "expire":
		return s.orderRepository.UpdateStatusByNumber(ctx, orderNumber, "cancelled")
	default:
		log.Printf("Unhandled midtrans status %q for order %s", status.TransactionStatus, orderNumber)
	}
	return nil
}
