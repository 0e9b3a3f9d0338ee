/**
 * @description
 * Error taxonomy for gateway calls. Every failure a resource client can return
 * is one of the types below; nothing is retried or recovered at this layer.
 */
package gatewayhttp

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a request or response payload that failed field-level
// validation. It names the first offending field and the violated constraint.
type ValidationError struct {
	Field      string
	Constraint string
	Err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: field %q violates %q", e.Field, e.Constraint)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError reports a network-level failure (connection refused, timeout,
// DNS). The underlying error is propagated unchanged.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseParseError reports a response body that is not valid JSON or does not
// match the expected response shape.
type ResponseParseError struct {
	Op  string
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.Op, e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

// APIError represents a non-2xx response from the gateway.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway api error: status %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway api error: status %d", e.StatusCode)
}

// wrapValidation converts a validator result into a *ValidationError.
func wrapValidation(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{
			Field:      verrs[0].Namespace(),
			Constraint: verrs[0].Tag(),
			Err:        err,
		}
	}
	return &ValidationError{Field: "unknown", Constraint: "unknown", Err: err}
}
