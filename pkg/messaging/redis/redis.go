package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/passvet/passvet/pkg/circuitbreaker"
	"github.com/passvet/passvet/pkg/messaging"
)

type Config struct {
	URL          string
	MaxRetries   int
	RetryBackoff time.Duration
	PoolSize     int
	MinIdleConns int
}

// Publisher publishes events over Redis pub/sub. Publish failures trip a
// circuit breaker so a dead Redis does not slow down every evaluation.
type Publisher struct {
	client *redis.Client
	cb     *circuitbreaker.CircuitBreaker
	logger zerolog.Logger
}

func NewPublisher(config Config, logger zerolog.Logger) (messaging.Publisher, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.MaxRetries = config.MaxRetries
	opts.MinRetryBackoff = config.RetryBackoff
	opts.PoolSize = config.PoolSize
	opts.MinIdleConns = config.MinIdleConns

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cb := circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
		Name:        "redis-publisher",
		MaxFailures: 5,
		Timeout:     30 * time.Second,
	})

	return &Publisher{
		client: client,
		cb:     cb,
		logger: logger,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.cb.Execute(func() error {
		return p.client.Publish(ctx, channel, payload).Err()
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("channel", channel).Msg("failed to publish event")
		return err
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
