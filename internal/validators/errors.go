package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidCommand wraps every rule violation found in a create command.
	ErrInvalidCommand = errors.New("invalid command")
)
