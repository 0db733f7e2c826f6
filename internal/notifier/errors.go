package notifier

import "errors"

var (
	ErrMarshallingPayload = errors.New("error marshalling notification payload")
	ErrPublishing         = errors.New("error publishing notification")
	ErrDeadLettering      = errors.New("error storing notification in dead letter list")
)
