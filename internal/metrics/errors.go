package metrics

import "errors"

var (
	ErrCreatingInstrument = errors.New("error creating metric instrument")
	ErrCreatingExporter   = errors.New("error creating prometheus exporter")
)
