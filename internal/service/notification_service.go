package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jobboard/jobboard-api/internal/events"
)

// NotificationService logs domain events for operators.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventJobPosted, n.handleJobPosted)
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplication)
	n.dispatcher.Subscribe(events.EventApplicationWithdrawn, n.handleApplication)
}

func (n *NotificationService) handleJobPosted(_ context.Context, event events.Event) error {
	n.logger.Info("JobPosted",
		zap.String("event_id", event.ID),
		zap.String("company", event.Actor.ID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleApplication(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationPayload)
	if !ok {
		n.logger.Warn("unexpected application payload", zap.String("event_id", event.ID))
		return nil
	}
	n.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("username", payload.Username),
		zap.String("company", payload.Company),
		zap.Int64("job_id", payload.JobID))
	return nil
}
