package pubsub

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/avelichko/mini-erp-cafe/pkg/logger"
)

type redisPubSub struct {
	client    *redis.Client
	pubsub    *redis.PubSub
	logger    *logger.CanonicalLogger
	messageCh chan Message
	cancel    context.CancelFunc
}

// NewRedisPubSub connects to Redis using a URL of the form
// redis://[:password@]host:port/db and validates the connection with a ping.
func NewRedisPubSub(redisURL string, log *logger.CanonicalLogger) (PubSub, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	r := &redisPubSub{
		client:    client,
		logger:    log,
		messageCh: make(chan Message, 16),
	}

	log.Info("redis pub/sub client initialized", logger.String("addr", opts.Addr))

	return r, nil
}

// Publish publishes a message to a Redis channel
func (r *redisPubSub) Publish(ctx context.Context, channel string, message string) error {
	if err := r.client.Publish(ctx, channel, message).Err(); err != nil {
		r.logger.WithError(err).Error("failed to publish message to redis")
		return err
	}
	return nil
}

// Subscribe subscribes to Redis channels
func (r *redisPubSub) Subscribe(ctx context.Context, channels ...string) (<-chan Message, error) {
	if len(channels) == 0 {
		return nil, nil
	}

	r.pubsub = r.client.Subscribe(ctx, channels...)

	listenCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	go r.listen(listenCtx)

	r.logger.Info("subscribed to redis channels", logger.Any("channels", channels))
	return r.messageCh, nil
}

// Unsubscribe unsubscribes from Redis channels
func (r *redisPubSub) Unsubscribe(ctx context.Context, channels ...string) error {
	if r.pubsub == nil {
		return nil
	}
	return r.pubsub.Unsubscribe(ctx, channels...)
}

// Close closes the Redis connection
func (r *redisPubSub) Close() error {
	if r.cancel != nil {
		r.cancel()
	}
	if r.pubsub != nil {
		_ = r.pubsub.Close()
	}
	if r.client != nil {
		if err := r.client.Close(); err != nil {
			r.logger.WithError(err).Error("failed to close redis client")
			return err
		}
	}
	close(r.messageCh)
	return nil
}

// listen listens for messages from subscribed channels
func (r *redisPubSub) listen(ctx context.Context) {
	ch := r.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping redis listener")
			return
		case m, ok := <-ch:
			if !ok {
				r.logger.Info("redis pubsub channel closed")
				return
			}
			r.messageCh <- Message{Channel: m.Channel, Payload: m.Payload}
		}
	}
}
