package usecase

import (
	"context"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// publishAll sends every message and only logs failures: notifications never
// block or roll back the state machine.
func publishAll(ctx context.Context, log *zap.Logger, pub interfaces.INotificationPublisher, msgs ...entities.Notification) {
	if pub == nil {
		return
	}
	for _, n := range msgs {
		if err := pub.Publish(ctx, n); err != nil {
			log.Warn("[notification][usecase] publish failed",
				zap.String("kind", string(n.Kind)),
				zap.String("contribution_id", n.ContributionID),
				zap.String("recipient", n.Recipient),
				zap.Error(err),
			)
		}
	}
}
