package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateOrder       = "order created successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order updated successfully"
	MessageSuccessDeleteOrder       = "order deleted successfully"
	MessageSuccessCreatePayment     = "payment link created successfully"

	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedUpdateOrderStatus = "failed to update order"
	MessageFailedDeleteOrder       = "failed to delete order"
	MessageFailedCreatePayment     = "failed to create payment link"

	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderStatus  = errors.New("invalid status")
	ErrEmptyOrderProducts  = errors.New("buyer name and products are required")
	ErrInvalidDeliveryDate = errors.New("invalid delivery date")
)

var ValidOrderStatuses = []string{"pending", "processing", "shipped", "delivered", "cancelled"}

type (
	OrderProductRequest struct {
		BatchID      string  `json:"batch_id" validate:"omitempty,uuid"`
		Name         string  `json:"name" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required"`
		PricePerUnit float64 `json:"price_per_unit" validate:"required,gt=0"`
	}

	CreateOrderRequest struct {
		BuyerName    string                `json:"buyer_name" validate:"required"`
		BuyerEmail   string                `json:"buyer_email" validate:"omitempty,email"`
		BuyerPhone   string                `json:"buyer_phone" validate:"omitempty"`
		Products     []OrderProductRequest `json:"products" validate:"required,min=1,dive"`
		Notes        string                `json:"notes" validate:"omitempty"`
		DeliveryDate string                `json:"delivery_date" validate:"omitempty"`
	}

	OrderProductResponse struct {
		BatchID      string  `json:"batch_id,omitempty"`
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
		PricePerUnit float64 `json:"price_per_unit"`
	}

	OrderResponse struct {
		ID           string                 `json:"id"`
		OrderNumber  string                 `json:"order_number"`
		BuyerName    string                 `json:"buyer_name"`
		BuyerEmail   string                 `json:"buyer_email,omitempty"`
		BuyerPhone   string                 `json:"buyer_phone,omitempty"`
		Status       string                 `json:"status"`
		TotalAmount  float64                `json:"total_amount"`
		TrackingID   string                 `json:"tracking_id,omitempty"`
		DeliveryDate *time.Time             `json:"delivery_date,omitempty"`
		Notes        string                 `json:"notes,omitempty"`
		OrderDate    time.Time              `json:"order_date"`
		Products     []OrderProductResponse `json:"products"`
	}

	UpdateOrderStatusRequest struct {
		Status     string `json:"status" validate:"required"`
		TrackingID string `json:"tracking_id" validate:"omitempty"`
	}

	OrderPaymentResponse struct {
		OrderID     string `json:"order_id"`
		OrderNumber string `json:"order_number"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}
)
