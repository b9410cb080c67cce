// Package faults defines the error taxonomy every fabricctl command reports
// through.
//
// ERROR CATEGORIES:
//   - Usage: an invalid parameter value or combination, detected before any
//     request is sent. Carries no connection context.
//   - Not found: a referenced entity does not exist, detected by a lookup
//     before a dependent mutation.
//   - Command: any failure returned by the cluster connection. The failure is
//     unwrapped from its aggregate to the first underlying cause and tagged
//     with a stable error ID and the connection endpoint.
//
// Translate is the single translation point between connection errors and
// the taxonomy. Commands call it once per connection call and never build a
// CommandError by hand.
package faults

import (
	"errors"
	"fmt"
)

// Process exit codes by error category.
const (
	ExitOK       = 0
	ExitRemote   = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// UsageError reports an invalid parameter value or combination.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	ErrorID string
	Kind    string
	Name    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// CommandError is a terminating failure of a connection operation.
type CommandError struct {
	ErrorID  string
	Endpoint string
	Cause    error
}

func (e *CommandError) Error() string {
	return e.Cause.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

// FirstCause unwraps aggregate errors (values implementing Unwrap() []error,
// such as errors.Join) down to their first inner error. Single-error
// wrappers are left intact so the cause keeps its own context.
func FirstCause(err error) error {
	for err != nil {
		agg, ok := err.(interface{ Unwrap() []error })
		if !ok {
			return err
		}
		errs := agg.Unwrap()
		if len(errs) == 0 || errs[0] == nil {
			return err
		}
		err = errs[0]
	}
	return err
}

// Translate maps an error returned by a connection operation into the
// taxonomy. Errors already in the taxonomy pass through unchanged.
func Translate(err error, errorID, endpoint string) error {
	if err == nil {
		return nil
	}

	var usage *UsageError
	var notFound *NotFoundError
	var cmdErr *CommandError
	if errors.As(err, &usage) || errors.As(err, &notFound) || errors.As(err, &cmdErr) {
		return err
	}

	return &CommandError{
		ErrorID:  errorID,
		Endpoint: endpoint,
		Cause:    FirstCause(err),
	}
}

// ErrorID returns the stable identifier carried by err, or an empty string
// for usage errors and errors outside the taxonomy.
func ErrorID(err error) string {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return notFound.ErrorID
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ErrorID
	}
	return ""
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return ExitNotFound
	}
	return ExitRemote
}
