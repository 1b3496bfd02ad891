// Package client defines interfaces for external service clients, such as the listening notification service.
package client

import (
	"context"

	"blocknotify/internal/core/domain"
)

// NotificationSender defines the interface for delivering an encoded
// notification payload to a listening service.
type NotificationSender interface {
	// Send opens a connection to the endpoint, writes the full payload in one
	// operation and releases the connection before returning.
	Send(ctx context.Context, endpoint domain.Endpoint, payload []byte) error
}
