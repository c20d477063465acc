package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/infrastructure/config"
	"gift_contribution/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultStream = "gift:notifications"

// streamAdder is the part of *redis.Client the publisher uses.
type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamPublisher appends notifications to a Redis stream for the e-mail
// worker to consume.
type RedisStreamPublisher struct {
	client streamAdder
	stream string
	log    *zap.Logger
}

var _ interfaces.INotificationPublisher = (*RedisStreamPublisher)(nil)

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisStreamPublisher(client streamAdder, stream string, log *zap.Logger) *RedisStreamPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStreamPublisher{client: client, stream: stream, log: log}
}

func (p *RedisStreamPublisher) Publish(ctx context.Context, n entities.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"kind":            string(n.Kind),
			"contribution_id": n.ContributionID,
			"recipient":       n.Recipient,
			"payload":         string(payload),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	p.log.Debug("[notification][redis] published",
		zap.String("stream", p.stream),
		zap.String("entry_id", id),
		zap.String("kind", string(n.Kind)),
	)
	return nil
}
