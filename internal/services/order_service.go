package services

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/emel-water/emel-api/config"
	"github.com/emel-water/emel-api/internal/models"
	"github.com/emel-water/emel-api/internal/validation"
	"github.com/emel-water/emel-api/pkg/apperrors"
	"github.com/emel-water/emel-api/pkg/logger"
	"github.com/emel-water/emel-api/pkg/metrics"
	"go.uber.org/zap"
)

// MsgOrderAccepted is the confirmation string returned to the buyer
const MsgOrderAccepted = "Заказ успешно оформлен"

// OrderService runs the order intake pipeline: validate, sanitize, suppress
// duplicates, format, deliver. Orders are never persisted; the Telegram
// message is the only durable trace.
type OrderService struct {
	config *config.Config
	sink   NotificationSink
	dedup  *cache.Cache
	now    func() time.Time
}

// NewOrderService creates a new order service instance
func NewOrderService(cfg *config.Config, sink NotificationSink) *OrderService {
	var dedup *cache.Cache
	if ttl := cfg.Orders.DedupTTLSeconds; ttl > 0 {
		window := time.Duration(ttl) * time.Second
		dedup = cache.New(window, 2*window)
	}

	return &OrderService{
		config: cfg,
		sink:   sink,
		dedup:  dedup,
		now:    time.Now,
	}
}

// SubmitOrder processes one submission. Validation failures come back in the
// response with a nil error; only delivery failures are returned as errors.
func (s *OrderService) SubmitOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error) {
	if errs := validation.ValidateOrder(req); len(errs) > 0 {
		metrics.OrderSubmissions.WithLabelValues("validation_failed").Inc()
		logger.Warn("Order rejected by validation",
			zap.Int("violations", len(errs)))
		return &models.OrderResponse{
			Success: false,
			Errors:  errs,
		}, nil
	}

	sanitized := validation.SanitizeOrder(req)

	// The submit control is disabled client-side while a request is in
	// flight, but impatient buyers still re-send from a second tab. A repeat
	// of the same order inside the window is acknowledged without pinging
	// the dispatchers again.
	key := dedupKey(sanitized)
	if s.dedup != nil {
		if _, found := s.dedup.Get(key); found {
			metrics.OrderSubmissions.WithLabelValues("duplicate").Inc()
			logger.Info("Duplicate order suppressed",
				zap.String("product", sanitized.Product),
				zap.String("quantity", sanitized.Quantity.String()))
			return &models.OrderResponse{
				Success: true,
				Message: MsgOrderAccepted,
			}, nil
		}
	}

	text := FormatNotification(sanitized, s.now())

	if err := s.sink.Send(ctx, text); err != nil {
		metrics.OrderSubmissions.WithLabelValues("delivery_failed").Inc()
		// Detail stays server-side; the handler returns a generic message
		logger.Error("Failed to deliver order notification", zap.Error(err))
		return nil, apperrors.DeliveryError(err)
	}

	if s.dedup != nil {
		s.dedup.SetDefault(key, struct{}{})
	}

	metrics.OrderSubmissions.WithLabelValues("success").Inc()
	logger.Info("Order delivered",
		zap.String("product", sanitized.Product),
		zap.String("quantity", sanitized.Quantity.String()))

	return &models.OrderResponse{
		Success: true,
		Message: MsgOrderAccepted,
	}, nil
}

func dedupKey(req *models.OrderRequest) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		validation.DigitsOnly(req.Phone), req.Email, req.Product, req.Quantity)
}
