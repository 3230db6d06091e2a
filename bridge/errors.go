package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrDisposed is returned when a closed Provider is asked for a Logger.
	ErrDisposed = errors.New("bridge: provider disposed")

	// ErrNilBackend is returned by constructors given no backend.
	ErrNilBackend = errors.New("bridge: nil backend")

	// ErrNilMapper is returned by constructors given no level mapper.
	ErrNilMapper = errors.New("bridge: nil level mapper")
)

// MappingError reports a host level without a backend correspondence.
type MappingError struct {
	Level LogLevel
	Err   error
}

func (e *MappingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bridge: map log level %s: %v", e.Level, e.Err)
	}
	return fmt.Sprintf("bridge: log level %s has no backend level", e.Level)
}

func (e *MappingError) Unwrap() error { return e.Err }

// FormatterError reports a formatter that failed or panicked. The entry of
// that call is discarded.
type FormatterError struct {
	Category string
	Err      error
}

func (e *FormatterError) Error() string {
	return fmt.Sprintf("bridge: format message for %q: %v", e.Category, e.Err)
}

func (e *FormatterError) Unwrap() error { return e.Err }

// SubmissionError reports a backend that rejected an entry or panicked
// while accepting it.
type SubmissionError struct {
	Category string
	Err      error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("bridge: submit entry for %q: %v", e.Category, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
