package domain

import "errors"

// ErrorKind classifies adapter failures.
type ErrorKind string

const (
	FetchError   ErrorKind = "fetch"
	ParseError   ErrorKind = "parse"
	UnknownError ErrorKind = "unknown"
)

// Caller-facing failure messages. They are part of the adapter's contract and
// never include the underlying cause.
const (
	MsgFetchFailure   = "Failure to load data urls."
	MsgParseFailure   = "Failure to parse data."
	MsgUnknownFailure = "Unknown adapter error."
)

// AdapterError is the only error type returned by the adapter. Error reports
// the fixed message; the cause is kept for logs and errors.Is.
type AdapterError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AdapterError) Error() string { return e.Message }

func (e *AdapterError) Unwrap() error { return e.Err }

// NewAdapterError wraps cause with the message matching kind.
func NewAdapterError(kind ErrorKind, cause error) *AdapterError {
	msg := MsgUnknownFailure
	switch kind {
	case FetchError:
		msg = MsgFetchFailure
	case ParseError:
		msg = MsgParseFailure
	}
	return &AdapterError{Kind: kind, Message: msg, Err: cause}
}

// ErrorKindOf returns the kind of an AdapterError in err's chain, or
// UnknownError for any other error.
func ErrorKindOf(err error) ErrorKind {
	var ae *AdapterError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return UnknownError
}
