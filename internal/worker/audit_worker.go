package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-auth/internal/events"
)

// StartAuditWorker subscribes an audit logger to session lifecycle events.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil || logger == nil {
		return
	}

	log := func(ctx context.Context, event events.Event) error {
		logger.Info("session event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("subject", event.Subject),
			zap.String("kind", string(event.Kind)),
			zap.Time("timestamp", event.Timestamp),
		)
		return nil
	}

	dispatcher.Subscribe(events.EventSessionEstablished, log)
	dispatcher.Subscribe(events.EventSessionRenewed, log)
	dispatcher.Subscribe(events.EventSessionRevoked, log)
}
