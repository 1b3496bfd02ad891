// Package application contains the core application service logic for the block notification forwarder.
package application

import (
	"context"
	"errors"
	"fmt"

	"blocknotify/internal/config"
	"blocknotify/internal/core/domain"
	"blocknotify/internal/core/domain/client"
	"blocknotify/internal/logger"
	"blocknotify/pkg/blocknotify"
)

// NotifierServiceImpl implements the blocknotify.Notifier interface and contains the core application logic.
type NotifierServiceImpl struct {
	sender client.NotificationSender
	logger logger.AppLogger

	escapeParams bool
}

// Compile-time check to ensure NotifierServiceImpl implements blocknotify.Notifier
var _ blocknotify.Notifier = (*NotifierServiceImpl)(nil)

// NewNotifierService creates a new instance of NotifierServiceImpl.
func NewNotifierService(
	sender client.NotificationSender,
	appLogger logger.AppLogger,
	cfg config.NotifierConfig,
) (*NotifierServiceImpl, error) {
	if appLogger == nil {
		return nil, errors.New("NewNotifierService: appLogger is nil")
	}
	if sender == nil {
		appLogger.Error("NewNotifierService: sender is nil")
		return nil, errors.New("NewNotifierService: sender is nil")
	}

	return &NotifierServiceImpl{
		sender:       sender,
		logger:       appLogger,
		escapeParams: cfg.EscapeParams,
	}, nil
}

// Notify validates the endpoint, encodes the notification payload and hands
// it to the sender for delivery. Every failure is terminal; nothing is retried.
func (s *NotifierServiceImpl) Notify(ctx context.Context, endpointString, coin, blockHash string) (err error) {
	endpoint, err := domain.ParseEndpoint(endpointString)
	if err != nil {
		return fmt.Errorf("endpoint validation failed: %w", err)
	}

	notification := domain.NewNotification(coin, blockHash)
	payload, err := domain.EncodePayload(notification, s.escapeParams)
	if err != nil {
		return fmt.Errorf("payload encoding failed: %w", err)
	}

	loggerWithTarget := s.logger.With("endpoint", endpoint.Address(), "coin", coin, "blockHash", blockHash)
	loggerWithTarget.Debug("Sending block notification", "payloadBytes", len(payload))

	if err := s.sender.Send(ctx, endpoint, payload); err != nil {
		loggerWithTarget.Error("Failed to deliver block notification", "error", err)
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	loggerWithTarget.Info("Block notification delivered")
	return nil
}
