package pricing

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed catalog query.
type ErrorKind int

const (
	// ErrInvalidArgument means caller-supplied input failed local
	// validation; no transport call was made.
	ErrInvalidArgument ErrorKind = iota
	// ErrTransport means the remote call failed for any reason
	// (network, auth, throttling). The message is the transport's own
	// error text, unmodified.
	ErrTransport
	// ErrDecode means one or more returned records could not be parsed
	// into structured form.
	ErrDecode
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrTransport:
		return "TransportError"
	case ErrDecode:
		return "DecodeError"
	default:
		return "Unknown"
	}
}

// QueryError is the error type returned by every Client operation.
type QueryError struct {
	Kind    ErrorKind
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

// KindOf extracts the ErrorKind from err. The second return is false
// when err did not originate from this package.
func KindOf(err error) (ErrorKind, bool) {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind, true
	}
	return 0, false
}

func invalidArgument(format string, args ...interface{}) *QueryError {
	return &QueryError{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func transportError(err error) *QueryError {
	return &QueryError{Kind: ErrTransport, Message: err.Error()}
}

func decodeError(format string, args ...interface{}) *QueryError {
	return &QueryError{Kind: ErrDecode, Message: fmt.Sprintf(format, args...)}
}
