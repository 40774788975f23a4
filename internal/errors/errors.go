// Package errors is the single import for error handling in pos. Sentinels
// and matching come from the standard library; wrapping records a stack
// through github.com/pkg/errors so failures logged at the edge show where
// they started.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error, suitable for package-level sentinels.
func New(text string) error {
	return stderrors.New(text)
}

// Errorf formats a new error and records the current stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// IsAny reports whether err matches at least one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and a stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records a stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace renders the deepest stack recorded in err's chain, or "" when
// none was recorded.
func StackTrace(err error) string {
	var deepest stackTracer
	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		if st, ok := cur.(stackTracer); ok {
			deepest = st
		}
	}
	if deepest == nil {
		return ""
	}

	return fmt.Sprintf("%+v", deepest.StackTrace())
}
