package client

import "fmt"

// BrokerError is the error payload of an API error envelope, surfaced to the
// caller verbatim.
type BrokerError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *BrokerError) Error() string {
	return fmt.Sprintf("broker error %s: %s", e.Code, e.Message)
}

// TransportError reports a network-level failure. It is never retried here:
// order submission is not idempotent, so retrying is the caller's decision.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
