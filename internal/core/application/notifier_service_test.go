package application_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blocknotify/internal/config"
	"blocknotify/internal/core/application"
	"blocknotify/internal/core/application/mocks/mock_client"
	"blocknotify/internal/core/domain"
	applogger "blocknotify/internal/logger"
)

func TestNotifierServiceImpl_Notify(t *testing.T) {
	service, mockSender := setupBasicService(t, config.NotifierConfig{})

	ctx := context.Background()
	wantEndpoint, _ := domain.ParseEndpoint("127.0.0.1:17117")
	wantPayload := []byte("{\"command\":\"blocknotify\",\"params\":[\"dogecoin\",\"abcd1234\"]}\n")

	mockSender.On("Send", ctx, wantEndpoint, wantPayload).Return(nil)

	err := service.Notify(ctx, "127.0.0.1:17117", "dogecoin", "abcd1234")
	assert.NoError(t, err)

	mockSender.AssertExpectations(t)
}

func TestNotifierServiceImpl_Notify_InvalidEndpoint(t *testing.T) {
	service, mockSender := setupBasicService(t, config.NotifierConfig{})

	ctx := context.Background()

	err := service.Notify(ctx, "127.0.0.1", "dogecoin", "abcd1234")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEndpointFormat), "Error should wrap domain.ErrInvalidEndpointFormat")

	mockSender.AssertNotCalled(t, "Send")
}

func TestNotifierServiceImpl_Notify_InvalidPort(t *testing.T) {
	service, mockSender := setupBasicService(t, config.NotifierConfig{})

	ctx := context.Background()

	err := service.Notify(ctx, "127.0.0.1:abc", "dogecoin", "abcd1234")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPort), "Error should wrap domain.ErrInvalidPort")

	mockSender.AssertNotCalled(t, "Send")
}

func TestNotifierServiceImpl_Notify_SenderError(t *testing.T) {
	service, mockSender := setupBasicService(t, config.NotifierConfig{})

	ctx := context.Background()
	wantEndpoint, _ := domain.ParseEndpoint("127.0.0.1:17117")
	wantErr := errors.New("connection refused")

	mockSender.On("Send", ctx, wantEndpoint, mock.Anything).Return(wantErr)

	err := service.Notify(ctx, "127.0.0.1:17117", "dogecoin", "abcd1234")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, wantErr), "Error should wrap the sender error")

	mockSender.AssertExpectations(t)
}

func TestNotifierServiceImpl_Notify_EscapedParams(t *testing.T) {
	service, mockSender := setupBasicService(t, config.NotifierConfig{EscapeParams: true})

	ctx := context.Background()
	wantEndpoint, _ := domain.ParseEndpoint("127.0.0.1:17117")
	wantPayload := []byte("{\"command\":\"blocknotify\",\"params\":[\"doge\\\"coin\",\"abcd1234\"]}\n")

	mockSender.On("Send", ctx, wantEndpoint, wantPayload).Return(nil)

	err := service.Notify(ctx, "127.0.0.1:17117", `doge"coin`, "abcd1234")
	assert.NoError(t, err)

	mockSender.AssertExpectations(t)
}

func TestNewNotifierService_NilDependencies(t *testing.T) {
	discardLogger := applogger.NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := application.NewNotifierService(nil, discardLogger, config.NotifierConfig{})
	assert.Error(t, err)

	_, err = application.NewNotifierService(mock_client.NewNotificationSender(t), nil, config.NotifierConfig{})
	assert.Error(t, err)
}

// setupBasicService is a helper for tests that need a service with a mocked sender.
func setupBasicService(t *testing.T, cfg config.NotifierConfig) (
	*application.NotifierServiceImpl,
	*mock_client.NotificationSender,
) {
	t.Helper()
	mockSender := mock_client.NewNotificationSender(t)

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testAppLogger := applogger.NewSlogAdapter(discardLogger)

	service, err := application.NewNotifierService(mockSender, testAppLogger, cfg)
	if err != nil {
		t.Fatalf("Failed to create test service: %v", err)
	}

	return service, mockSender
}
