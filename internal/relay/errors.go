package relay

import (
	"errors"
	"fmt"
)

// Kind classifies why a submission failed.
type Kind int

const (
	// KindTransport means the relay could not be reached or the request timed out.
	KindTransport Kind = iota + 1
	// KindStatus means the relay answered with a non-2xx status.
	KindStatus
	// KindMalformed means the relay body was not a JSON object.
	KindMalformed
	// KindRejected means the relay answered but reported success=false.
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindMalformed:
		return "malformed"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching on the failure kind.
var (
	ErrTransport = errors.New("relay: transport failure")
	ErrStatus    = errors.New("relay: unexpected status")
	ErrMalformed = errors.New("relay: malformed response")
	ErrRejected  = errors.New("relay: submission rejected")
)

// FallbackMessage is shown when a rejected submission carries no reason.
const FallbackMessage = "Form submission failed. Please check your access key and try again."

// TransportMessage is shown when the relay could not be reached.
const TransportMessage = "Could not reach the form service. Please check your connection and try again."

// Error describes a failed submission. Message is safe to show to visitors.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("relay %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("relay %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrStatus:
		return e.Kind == KindStatus
	case ErrMalformed:
		return e.Kind == KindMalformed
	case ErrRejected:
		return e.Kind == KindRejected
	}
	return false
}

// UserMessage extracts the visitor-facing message from err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var relayErr *Error
	if errors.As(err, &relayErr) && relayErr.Message != "" {
		return relayErr.Message
	}
	return "Unknown error occurred"
}
