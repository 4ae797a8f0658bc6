package order

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"agrisync-backend/domain"
	"agrisync-backend/entities"

	"github.com/google/uuid"
)

type fakeOrderRepository struct {
	orders       []*entities.Order
	items        []*entities.OrderItem
	affectedRows int64
	lastStatus   string
	lastTracking string
}

func (f *fakeOrderRepository) CreateOrder(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error {
	f.orders = append(f.orders, order)
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeOrderRepository) GetOrdersByProducer(ctx context.Context, producerID uuid.UUID) ([]*entities.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepository) GetOrderByIDAndProducer(ctx context.Context, id, producerID uuid.UUID) (*entities.Order, error) {
	for _, o := range f.orders {
		if o.ID == id && o.ProducerID == producerID {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeOrderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (*entities.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeOrderRepository) UpdateOrderStatus(ctx context.Context, id, producerID uuid.UUID, status, trackingID string) (int64, error) {
	f.lastStatus = status
	f.lastTracking = trackingID
	return f.affectedRows, nil
}

func (f *fakeOrderRepository) UpdateStatusByNumber(ctx context.Context, orderNumber, status string) error {
	f.lastStatus = status
	return nil
}

func (f *fakeOrderRepository) DeleteOrder(ctx context.Context, id, producerID uuid.UUID) (int64, error) {
	return f.affectedRows, nil
}

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{4}-\d{4}$`)

func TestCreateOrderComputesTotal(t *testing.T) {
	repo := &fakeOrderRepository{}
	service := NewOrderService(repo)

	res, err := service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		BuyerName:  "Spencer's Retail",
		BuyerEmail: "procurement@example.com",
		Products: []domain.OrderProductRequest{
			{Name: "Basmati Rice", Quantity: 100, Unit: "kg", PricePerUnit: 85},
			{Name: "Turmeric", Quantity: 20, Unit: "kg", PricePerUnit: 240},
		},
	}, uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalAmount != 100*85+20*240 {
		t.Fatalf("total = %v, want %v", res.TotalAmount, 100*85+20*240)
	}
	if !orderNumberPattern.MatchString(res.OrderNumber) {
		t.Fatalf("order number %q does not match ORD-YYYY-NNNN", res.OrderNumber)
	}
	if res.Status != "pending" {
		t.Fatalf("status = %q, want pending", res.Status)
	}
	if len(repo.items) != 2 {
		t.Fatalf("persisted %d items, want 2", len(repo.items))
	}
}

func TestCreateOrderRequiresProducts(t *testing.T) {
	service := NewOrderService(&fakeOrderRepository{})

	_, err := service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		BuyerName: "Spencer's Retail",
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrEmptyOrderProducts) {
		t.Fatalf("expected ErrEmptyOrderProducts, got %v", err)
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	service := NewOrderService(&fakeOrderRepository{affectedRows: 1})

	err := service.UpdateOrderStatus(context.Background(), uuid.New().String(),
		domain.UpdateOrderStatusRequest{Status: "teleported"}, uuid.New().String())
	if !errors.Is(err, domain.ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestUpdateOrderStatusUnownedOrder(t *testing.T) {
	service := NewOrderService(&fakeOrderRepository{affectedRows: 0})

	err := service.UpdateOrderStatus(context.Background(), uuid.New().String(),
		domain.UpdateOrderStatusRequest{Status: "shipped", TrackingID: "TRK-42"}, uuid.New().String())
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateOrderStatusPassesTracking(t *testing.T) {
	repo := &fakeOrderRepository{affectedRows: 1}
	service := NewOrderService(repo)

	err := service.UpdateOrderStatus(context.Background(), uuid.New().String(),
		domain.UpdateOrderStatusRequest{Status: "shipped", TrackingID: "TRK-42"}, uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastStatus != "shipped" || repo.lastTracking != "TRK-42" {
		t.Fatalf("repository saw status=%q tracking=%q", repo.lastStatus, repo.lastTracking)
	}
}

func TestDeleteOrderNotFound(t *testing.T) {
	service := NewOrderService(&fakeOrderRepository{affectedRows: 0})

	err := service.DeleteOrder(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
