package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrMissingID is returned when a backend stores a record without an id.
	ErrMissingID = errors.New("created record has no id")
)

// Kind classifies a failure for the transport layer.
type Kind uint8

const (
	// KindInternal is any failure the client cannot fix.
	KindInternal Kind = iota
	// KindNotFound means the requested record does not exist.
	KindNotFound
	// KindValidationFailed means the request was malformed or broke a rule.
	KindValidationFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidationFailed:
		return "validation_failed"
	default:
		return "internal"
	}
}

// Error is a failure tagged with its Kind and the operation that produced
// it. Its message is the message of the wrapped error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError tags err with kind and op.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain and
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// OpOf returns the operation recorded on err, if any.
func OpOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}
