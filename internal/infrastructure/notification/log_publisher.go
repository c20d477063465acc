package notification

import (
	"context"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogPublisher writes notifications to the log. It is used when no Redis is
// configured, e.g. in local development.
type LogPublisher struct {
	log *zap.Logger
}

var _ interfaces.INotificationPublisher = (*LogPublisher)(nil)

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, n entities.Notification) error {
	p.log.Info("[notification][log] "+n.Subject,
		zap.String("kind", string(n.Kind)),
		zap.String("contribution_id", n.ContributionID),
		zap.String("order_id", n.OrderID),
		zap.String("recipient", n.Recipient),
		zap.Any("data", n.Data),
	)
	return nil
}
