// Package mock_client provides test doubles for the client package interfaces.
package mock_client

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blocknotify/internal/core/domain"
)

// NotificationSender is a mock implementation of client.NotificationSender.
type NotificationSender struct {
	mock.Mock
}

// Send provides a mock function with the given fields: ctx, endpoint, payload.
func (m *NotificationSender) Send(ctx context.Context, endpoint domain.Endpoint, payload []byte) error {
	args := m.Called(ctx, endpoint, payload)
	return args.Error(0)
}

// NewNotificationSender creates a new NotificationSender mock whose
// expectations are asserted during test cleanup.
func NewNotificationSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationSender {
	m := &NotificationSender{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
