package command

import "fmt"

// Status indicates the outcome of a command.
type Status uint8

const (
	// StatusOK indicates successful execution.
	StatusOK Status = iota
	// StatusNoOp indicates the command had no effect.
	StatusNoOp
	// StatusError indicates the command failed.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is what a command returns to the frontend. Message, when set,
// belongs in the echo area regardless of status.
type Result struct {
	Status  Status
	Message string
	Err     error
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool { return r.Status == StatusOK }

// IsError returns true if the result indicates failure.
func (r Result) IsError() bool { return r.Status == StatusError }

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// Successf creates a successful result with an echo-area message.
func Successf(format string, args ...any) Result {
	return Result{Status: StatusOK, Message: fmt.Sprintf(format, args...)}
}

// NoOp creates a no-operation result with a message.
func NoOp(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error creates an error result from err, surfacing it as the message.
func Error(err error) Result {
	return Result{Status: StatusError, Err: err, Message: err.Error()}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	err := fmt.Errorf(format, args...)
	return Result{Status: StatusError, Err: err, Message: err.Error()}
}
