package candishared

import (
	"errors"
	"fmt"
)

// ErrorKind classify failure of outbound call
type ErrorKind string

const (
	// ErrorKindNetwork connection or transport failure
	ErrorKindNetwork ErrorKind = "network_failure"
	// ErrorKindUpstream upstream respond with non 200 status
	ErrorKindUpstream ErrorKind = "upstream_error"
	// ErrorKindMalformed upstream payload missing expected fields
	ErrorKindMalformed ErrorKind = "malformed_payload"
)

// OracleError typed failure from external data source or platform
type OracleError struct {
	Kind       ErrorKind
	Source     string
	StatusCode int
	Err        error
}

// NewNetworkError constructor
func NewNetworkError(source string, err error) *OracleError {
	return &OracleError{Kind: ErrorKindNetwork, Source: source, Err: err}
}

// NewUpstreamError constructor
func NewUpstreamError(source string, statusCode int) *OracleError {
	return &OracleError{Kind: ErrorKindUpstream, Source: source, StatusCode: statusCode}
}

// NewMalformedError constructor
func NewMalformedError(source string, err error) *OracleError {
	return &OracleError{Kind: ErrorKindMalformed, Source: source, Err: err}
}

// Error implement error
func (e *OracleError) Error() string {
	switch {
	case e.Kind == ErrorKindUpstream:
		return fmt.Sprintf("%s: %s: status code %d", e.Source, e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Kind)
}

// Unwrap implement errors unwrapper
func (e *OracleError) Unwrap() error {
	return e.Err
}

// ErrorKindOf extract kind from error chain, empty if error is not oracle error
func ErrorKindOf(err error) ErrorKind {
	var oracleErr *OracleError
	if errors.As(err, &oracleErr) {
		return oracleErr.Kind
	}
	return ""
}
