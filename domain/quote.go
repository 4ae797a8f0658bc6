package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateQuote = "quote request submitted successfully"
	MessageSuccessGetQuotes   = "quote requests retrieved successfully"

	MessageFailedCreateQuote = "failed to submit quote request"
	MessageFailedGetQuotes   = "failed to fetch quote requests"

	ErrQuoteNotFound = errors.New("quote request not found")
)

type (
	CreateQuoteRequest struct {
		ProductID   string  `json:"productId" validate:"required,uuid"`
		ProductName string  `json:"productName" validate:"omitempty"`
		Producer    string  `json:"producer" validate:"omitempty"`
		CompanyName string  `json:"companyName" validate:"required"`
		ContactName string  `json:"contactName" validate:"required"`
		Email       string  `json:"email" validate:"required,email"`
		Phone       string  `json:"phone" validate:"required"`
		Quantity    float64 `json:"quantity" validate:"required,gt=0"`
		Message     string  `json:"message" validate:"omitempty"`
	}

	CreateQuoteResponse struct {
		QuoteID string `json:"quote_id"`
		Status  string `json:"status"`
	}

	QuoteResponse struct {
		ID          string    `json:"id"`
		ProductID   string    `json:"product_id"`
		ProductName string    `json:"product_name"`
		Producer    string    `json:"producer"`
		CompanyName string    `json:"company_name"`
		ContactName string    `json:"contact_name"`
		Email       string    `json:"email"`
		Phone       string    `json:"phone"`
		Quantity    float64   `json:"quantity"`
		Message     string    `json:"message,omitempty"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
