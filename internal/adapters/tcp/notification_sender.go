// Package tcp implements notification delivery over a raw TCP connection.
package tcp

import (
	"context"
	"fmt"
	"net"
	"time"

	"blocknotify/internal/core/domain"
	"blocknotify/internal/core/domain/client"
)

// NotificationSender implements the client.NotificationSender interface by
// writing the payload to a freshly opened TCP connection. One connection per
// Send call; the connection is closed on every return path.
type NotificationSender struct {
	dialTimeout time.Duration
}

// Compile-time check to ensure NotificationSender implements client.NotificationSender
var _ client.NotificationSender = (*NotificationSender)(nil)

// NewNotificationSender creates a new TCP sender. A zero dialTimeout means
// the connect blocks until the OS gives up, like the classic notify script.
func NewNotificationSender(dialTimeout time.Duration) *NotificationSender {
	return &NotificationSender{
		dialTimeout: dialTimeout,
	}
}

// Send connects to the endpoint, writes the full payload in one operation and
// closes the connection. No response is read.
func (s *NotificationSender) Send(ctx context.Context, endpoint domain.Endpoint, payload []byte) error {
	dialer := net.Dialer{Timeout: s.dialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", endpoint.Address())
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", endpoint.Address(), err)
	}
	defer func() {
		_ = conn.Close()
	}()

	n, err := conn.Write(payload)
	if err != nil {
		return fmt.Errorf("failed to send notification to %s: %w", endpoint.Address(), err)
	}
	if n != len(payload) {
		return fmt.Errorf("short write to %s: sent %d of %d bytes", endpoint.Address(), n, len(payload))
	}

	return nil
}
