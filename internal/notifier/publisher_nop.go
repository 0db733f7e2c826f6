package notifier

import (
	"context"

	"github.com/MKhiriev/go-library-bff/internal/logger"
)

type nopPublisher struct {
	logger *logger.Logger
}

func newNopPublisher(logger *logger.Logger) Publisher {
	return &nopPublisher{logger: logger}
}

func (p *nopPublisher) Publish(_ context.Context, channel, payload string) error {
	p.logger.Debug().
		Str("func", "nopPublisher.Publish").
		Str("channel", channel).
		Str("payload", payload).
		Msg("no broker configured, notification logged only")
	return nil
}
