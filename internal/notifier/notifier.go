package notifier

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// deliveryTimeout bounds each Redis call of a notification. Notifications
// outlive the request that triggered them, so the request deadline does not
// apply.
const deliveryTimeout = 3 * time.Second

// Publisher delivers a payload to a named channel.
type Publisher interface {
	Publish(ctx context.Context, channel, payload string) error
}

// DeadLetterSink keeps payloads that could not be published.
type DeadLetterSink interface {
	Store(ctx context.Context, payload string) error
}

// Notifier serializes values and publishes them to a single channel.
type Notifier struct {
	publisher  Publisher
	deadLetter DeadLetterSink
	channel    string
	closers    []func() error

	logger *logger.Logger
}

// New returns a Notifier publishing to channel. deadLetter may be nil.
func New(publisher Publisher, channel string, deadLetter DeadLetterSink, logger *logger.Logger) *Notifier {
	return &Notifier{
		publisher:  publisher,
		deadLetter: deadLetter,
		channel:    channel,
		logger:     logger,
	}
}

// Notify publishes v as indented JSON. It never fails: errors are logged
// and the payload goes to the dead letter sink if there is one. Cancellation
// of ctx is ignored.
func (n *Notifier) Notify(ctx context.Context, v any) {
	ctx = context.WithoutCancel(ctx)

	log := n.logger
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		log = log.WithTraceID(traceID)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrMarshallingPayload, err)).
			Str("func", "Notifier.Notify").
			Str("channel", n.channel).
			Msg("notification dropped")
		return
	}
	payload := string(data)

	publishCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if err = n.publisher.Publish(publishCtx, n.channel, payload); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrPublishing, err)).
			Str("func", "Notifier.Notify").
			Str("channel", n.channel).
			Msg("notification not delivered")
		n.park(ctx, log, payload)
		return
	}

	log.Debug().Str("func", "Notifier.Notify").Str("channel", n.channel).Msg("notification published")
}

func (n *Notifier) park(ctx context.Context, log *logger.Logger, payload string) {
	if n.deadLetter == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if err := n.deadLetter.Store(ctx, payload); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrDeadLettering, err)).
			Str("func", "Notifier.park").
			Msg("notification lost")
	}
}

// Close releases the connections owned by the notifier.
func (n *Notifier) Close() error {
	var firstErr error
	for _, closeFn := range n.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	n.closers = nil

	return firstErr
}
