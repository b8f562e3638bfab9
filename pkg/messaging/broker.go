package messaging

import (
	"context"
)

// Publisher publishes fire-and-forget events to a channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}
