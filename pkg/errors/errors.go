package errors

import (
	goerrors "errors"
	"fmt"
)

// New creates a new error with the given message. The arguments are handled
// in the manner of fmt.Sprintf.
func New(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

type contextError struct {
	err     error
	context string
}

// WithContext wraps `err` with a description of what was being attempted
// when it occurred. The context is prepended to the error message.
func WithContext(err error, context string) error {
	return contextError{err: err, context: context}
}

func (err contextError) Error() string {
	return fmt.Sprintf("%s: %s", err.context, err.err)
}

func (err contextError) Unwrap() error {
	return err.err
}

// RootCause returns the innermost error that was wrapped with WithContext.
func RootCause(err error) error {
	for {
		ctxErr, ok := err.(contextError)
		if !ok {
			return err
		}
		err = ctxErr.err
	}
}

// FriendlyError is an error whose message is meant to be shown directly to
// the user, rather than the full chain of context.
type FriendlyError struct {
	template string
	args     []interface{}
}

// NewFriendlyError creates a FriendlyError. The template is formatted with
// `args` when the message is rendered.
func NewFriendlyError(template string, args ...interface{}) error {
	return FriendlyError{template: template, args: args}
}

func (err FriendlyError) Error() string {
	return err.FriendlyMessage()
}

// FriendlyMessage returns the message that should be shown to the user.
func (err FriendlyError) FriendlyMessage() string {
	return fmt.Sprintf(err.template, err.args...)
}

// Friendly is implemented by errors that carry a user facing message.
type Friendly interface {
	FriendlyMessage() string
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return goerrors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true.
func As(err error, target interface{}) bool {
	return goerrors.As(err, target)
}
