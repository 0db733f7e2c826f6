package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/models"
)

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	sub := client.Subscribe(ctx, "authors")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, NewRedisPublisher(client).Publish(ctx, "authors", `{"id":"1"}`))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "authors", msg.Channel)
		assert.Equal(t, `{"id":"1"}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestRedisDeadLetter_Store(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sink := NewRedisDeadLetter(client, "authors:dead")
	require.NoError(t, sink.Store(context.Background(), "p1"))
	require.NoError(t, sink.Store(context.Background(), "p2"))

	list, err := mr.List("authors:dead")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, list)
}

func TestNewNotifier_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Notifier{RedisAddress: mr.Addr(), Channel: "books", DeadLetterKey: "books:dead"}

	n := NewNotifier(context.Background(), cfg, logger.Nop())

	// nobody subscribed: PUBLISH still succeeds and nothing is parked
	n.Notify(context.Background(), models.BookResponse{ID: "b-1"})
	assert.False(t, mr.Exists("books:dead"))

	require.NoError(t, n.Close())

	// with the client closed the publish fails, and so does the dead letter
	assert.NotPanics(t, func() { n.Notify(context.Background(), models.BookResponse{ID: "b-2"}) })
}

func TestNewNotifier_CancelledContext(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Notifier{RedisAddress: mr.Addr(), Channel: "authors", DeadLetterKey: "authors:dead"}
	n := NewNotifier(context.Background(), cfg, logger.Nop())
	t.Cleanup(func() { _ = n.Close() })

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	sub := client.Subscribe(context.Background(), "authors")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.Notify(ctx, models.AuthorResponse{ID: "a-1"})

	select {
	case msg := <-sub.Channel():
		assert.Contains(t, msg.Payload, `"id": "a-1"`)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
	assert.False(t, mr.Exists("authors:dead"))
}

func TestNewNotifier_CancelledContextPublishFailureIsParked(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	n := New(&fakePublisher{err: errors.New("broker gone")}, "authors", NewRedisDeadLetter(client, "authors:dead"), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.Notify(ctx, models.AuthorResponse{ID: "a-1"})

	list, err := mr.List("authors:dead")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, list[0], `"id": "a-1"`)
}

func TestNewNotifier_RedisDownParksNothingButSurvives(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	n := NewNotifier(context.Background(), config.Notifier{RedisAddress: addr, Channel: "authors"}, logger.Nop())
	t.Cleanup(func() { _ = n.Close() })

	assert.NotPanics(t, func() { n.Notify(context.Background(), models.AuthorResponse{ID: "a-1"}) })
}

func TestNewNotifier_NoAddress(t *testing.T) {
	n := NewNotifier(context.Background(), config.Notifier{Channel: "authors"}, logger.Nop())

	_, ok := n.publisher.(*nopPublisher)
	assert.True(t, ok)
	assert.Nil(t, n.deadLetter)
}
