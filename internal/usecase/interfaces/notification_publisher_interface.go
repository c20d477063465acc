package interfaces

import (
	"context"

	"gift_contribution/internal/domain/entities"
)

// INotificationPublisher hands messages to the notification gateway.
//
// Delivery is at-least-once and best effort: callers log failures and never
// roll back the state change that produced the message.
type INotificationPublisher interface {
	Publish(ctx context.Context, n entities.Notification) error
}
