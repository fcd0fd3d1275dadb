package gemini

import "fmt"

// FailureKind classifies why a generation produced no usable text.
type FailureKind int

const (
	// MissingKey means no API key was configured; no request is sent.
	MissingKey FailureKind = iota + 1
	// Unavailable means the request could not be completed (network, timeout).
	Unavailable
	// BadStatus means the service answered with a non-2xx status.
	BadStatus
	// Empty means the service answered but carried no text.
	Empty
	// Malformed means the body, or the structured output in it, could not be decoded.
	Malformed
)

func (k FailureKind) String() string {
	switch k {
	case MissingKey:
		return "missing_key"
	case Unavailable:
		return "unavailable"
	case BadStatus:
		return "bad_status"
	case Empty:
		return "empty"
	case Malformed:
		return "malformed"
	default:
		return fmt.Sprintf("failure(%d)", int(k))
	}
}

// Failure is the error returned by the client. Callers that fall back on
// failure still log Kind so outages and bad output can be told apart.
type Failure struct {
	Kind   FailureKind
	Status int
	Err    error
}

func (f *Failure) Error() string {
	switch {
	case f.Err != nil:
		return fmt.Sprintf("gemini %s: %v", f.Kind, f.Err)
	case f.Status != 0:
		return fmt.Sprintf("gemini %s: status %d", f.Kind, f.Status)
	default:
		return fmt.Sprintf("gemini %s", f.Kind)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}
