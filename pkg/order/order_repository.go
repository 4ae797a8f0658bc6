package order

import (
	"agrisync-backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error
		GetOrdersByProducer(ctx context.Context, producerID uuid.UUID) ([]*entities.Order, error)
		GetOrderByIDAndProducer(ctx context.Context, id, producerID uuid.UUID) (*entities.Order, error)
		GetOrderByNumber(ctx context.Context, orderNumber string) (*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id, producerID uuid.UUID, status, trackingID string) (int64, error)
		UpdateStatusByNumber(ctx context.Context, orderNumber, status string) error
		DeleteOrder(ctx context.Context, id, producerID uuid.UUID) (int64, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetOrdersByProducer(ctx context.Context, producerID uuid.UUID) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("producer_id = ?", producerID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrderByIDAndProducer(ctx context.Context, id, producerID uuid.UUID) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND producer_id = ?", id, producerID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id, producerID uuid.UUID, status, trackingID string) (int64, error) {
	updates := map[string]interface{}{"status": status}
	if trackingID != "" {
		updates["tracking_id"] = trackingID
	}

	result := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ? AND producer_id = ?", id, producerID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) UpdateStatusByNumber(ctx context.Context, orderNumber, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("order_number = ?", orderNumber).
		Update("status", status).Error
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id, producerID uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND producer_id = ?", id, producerID).Delete(&entities.Order{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}
