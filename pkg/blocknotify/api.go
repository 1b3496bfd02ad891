// Package blocknotify defines the public API contract for the block notification forwarder.
package blocknotify

import (
	"context"
)

// Notifier defines the public interface for forwarding block notifications
// to a listening pool service.
type Notifier interface {
	// Notify sends a single notification for the given coin and block hash to
	// the service listening at endpoint ("host:port"). It opens one TCP
	// connection, writes one newline-terminated JSON command, closes the
	// connection and returns. Delivery is fire-and-forget: no response is
	// read and no retry is attempted.
	Notify(ctx context.Context, endpoint, coin, blockHash string) (err error)
}
