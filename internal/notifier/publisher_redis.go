package notifier

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
)

const pingTimeout = 3 * time.Second

type redisPublisher struct {
	client redis.UniversalClient
}

// NewRedisPublisher publishes with the Redis PUBLISH command.
func NewRedisPublisher(client redis.UniversalClient) Publisher {
	return &redisPublisher{client: client}
}

func (p *redisPublisher) Publish(ctx context.Context, channel, payload string) error {
	return p.client.Publish(ctx, channel, payload).Err()
}

type redisDeadLetter struct {
	client redis.UniversalClient
	key    string
}

// NewRedisDeadLetter appends failed payloads to the Redis list key.
func NewRedisDeadLetter(client redis.UniversalClient, key string) DeadLetterSink {
	return &redisDeadLetter{client: client, key: key}
}

func (d *redisDeadLetter) Store(ctx context.Context, payload string) error {
	return d.client.RPush(ctx, d.key, payload).Err()
}

// NewNotifier builds a Notifier from cfg. With an empty Redis address the
// notifier only logs. An unreachable Redis is reported but not fatal, since
// publishing is best-effort.
func NewNotifier(ctx context.Context, cfg config.Notifier, log *logger.Logger) *Notifier {
	if cfg.RedisAddress == "" {
		log.Info().Str("func", "NewNotifier").Msg("redis address is not set, notifications will be logged only")
		return New(newNopPublisher(log), cfg.Channel, nil, log)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("func", "NewNotifier").Str("address", cfg.RedisAddress).Msg("redis is not reachable")
	}

	var deadLetter DeadLetterSink
	if cfg.DeadLetterKey != "" {
		deadLetter = NewRedisDeadLetter(client, cfg.DeadLetterKey)
	}

	n := New(NewRedisPublisher(client), cfg.Channel, deadLetter, log)
	n.closers = append(n.closers, client.Close)

	return n
}
