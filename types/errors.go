package types

import "fmt"

// GatewayErrorKind distinguishes how an outbound gateway call failed
type GatewayErrorKind string

const (
	// GatewayErrorTransport covers connection failures and timeouts. The caller
	// may retry the attempt.
	GatewayErrorTransport GatewayErrorKind = "transport"
	// GatewayErrorDeclined covers business declines. Terminal for the attempt.
	GatewayErrorDeclined GatewayErrorKind = "declined"
	// GatewayErrorPermission covers provider-side authorization failures, such
	// as a terminal not enabled for payments. Needs support escalation.
	GatewayErrorPermission GatewayErrorKind = "permission"
)

// GatewayError is a structured failure from a payment rail call
type GatewayError struct {
	Kind    GatewayErrorKind
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway %s error: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("gateway %s error: %v", e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// PersistenceError indicates a store write failed after a valid reconciliation
// decision. The HTTP layer maps this to a retryable status since the event was
// not durably applied.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ResolutionError indicates no invoice matched the event's correlation key
type ResolutionError struct {
	Reference string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no invoice found for reference %q", e.Reference)
}

// MalformedInputError indicates an unparseable body or missing correlation key
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}
