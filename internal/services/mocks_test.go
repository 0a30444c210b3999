package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNotificationSink is a mock implementation of NotificationSink
type MockNotificationSink struct {
	mock.Mock
}

func (m *MockNotificationSink) Send(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}
