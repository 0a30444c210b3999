package services

import (
	"context"

	"github.com/emel-water/emel-api/internal/models"
)

// NotificationSink delivers a formatted order notification to the dispatcher
// chat. The Telegram client in pkg/telegram is the production implementation.
type NotificationSink interface {
	Send(ctx context.Context, text string) error
}

// OrderServiceInterface defines the interface for order intake operations
type OrderServiceInterface interface {
	SubmitOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error)
}
