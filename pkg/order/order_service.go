package order

import (
	"agrisync-backend/domain"
	"agrisync-backend/entities"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error)
		GetOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest, userID string) error
		DeleteOrder(ctx context.Context, id string, userID string) error
	}

	orderService struct {
		orderRepository OrderRepository
	}
)

func NewOrderService(orderRepository OrderRepository) OrderService {
	return &orderService{orderRepository: orderRepository}
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%04d", time.Now().Year(), rand.Intn(10000))
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error) {
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	if req.BuyerName == "" || len(req.Products) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptyOrderProducts
	}

	var deliveryDate *time.Time
	if req.DeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DeliveryDate)
		if err != nil {
			return domain.OrderResponse{}, domain.ErrInvalidDeliveryDate
		}
		deliveryDate = &parsed
	}

	var totalAmount float64
	items := make([]*entities.OrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		totalAmount += p.Quantity * p.PricePerUnit

		item := &entities.OrderItem{
			ID:           uuid.New(),
			ProductName:  p.Name,
			Quantity:     p.Quantity,
			Unit:         p.Unit,
			PricePerUnit: p.PricePerUnit,
		}
		if p.BatchID != "" {
			batchID, err := uuid.Parse(p.BatchID)
			if err != nil {
				return domain.OrderResponse{}, domain.ErrParseUUID
			}
			item.BatchID = &batchID
		}
		items = append(items, item)
	}

	order := &entities.Order{
		ID:           uuid.New(),
		OrderNumber:  generateOrderNumber(),
		ProducerID:   producerID,
		BuyerName:    req.BuyerName,
		BuyerEmail:   req.BuyerEmail,
		BuyerPhone:   req.BuyerPhone,
		Status:       "pending",
		TotalAmount:  totalAmount,
		DeliveryDate: deliveryDate,
		Notes:        req.Notes,
	}

	if err := s.orderRepository.CreateOrder(ctx, order, items); err != nil {
		return domain.OrderResponse{}, err
	}
	order.Items = items

	return toOrderResponse(order), nil
}

func (s *orderService) GetOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orders, err := s.orderRepository.GetOrdersByProducer(ctx, producerID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest, userID string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if !isValidStatus(req.Status) {
		return domain.ErrInvalidOrderStatus
	}

	affected, err := s.orderRepository.UpdateOrderStatus(ctx, orderID, producerID, req.Status, req.TrackingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id string, userID string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}
	producerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	affected, err := s.orderRepository.DeleteOrder(ctx, orderID, producerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func isValidStatus(status string) bool {
	for _, s := range domain.ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	products := make([]domain.OrderProductResponse, 0, len(order.Items))
	for _, item := range order.Items {
		product := domain.OrderProductResponse{
			Name:         item.ProductName,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			PricePerUnit: item.PricePerUnit,
		}
		if item.BatchID != nil {
			product.BatchID = item.BatchID.String()
		}
		products = append(products, product)
	}

	return domain.OrderResponse{
		ID:           order.ID.String(),
		OrderNumber:  order.OrderNumber,
		BuyerName:    order.BuyerName,
		BuyerEmail:   order.BuyerEmail,
		BuyerPhone:   order.BuyerPhone,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		TrackingID:   order.TrackingID,
		DeliveryDate: order.DeliveryDate,
		Notes:        order.Notes,
		OrderDate:    order.CreatedAt,
		Products:     products,
	}
}
