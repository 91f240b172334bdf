package lpapi

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is wrapped by every InvalidParametersError.
var ErrInvalidParameters = errors.New("parameters are not valid")

// InvalidParametersError reports a command rejected before it was sent.
// Reason is empty for a missing field.
type InvalidParametersError struct {
	Action string
	Field  string
	Reason string
}

func (e *InvalidParametersError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is required"
	}
	if e.Action == "" {
		return fmt.Sprintf("%v: %s %s", ErrInvalidParameters, e.Field, reason)
	}
	return fmt.Sprintf("%s: %v: %s %s", e.Action, ErrInvalidParameters, e.Field, reason)
}

func (e *InvalidParametersError) Unwrap() error {
	return ErrInvalidParameters
}

func missing(action, field string) error {
	return &InvalidParametersError{Action: action, Field: field}
}

// RemoteCommandError reports a non-zero status code from the service. Data
// holds the normalized parameters that were sent and Fields the full body.
type RemoteCommandError struct {
	StatusCode int            `json:"statusCode"`
	Action     string         `json:"action"`
	Data       Params         `json:"data"`
	Fields     map[string]any `json:"-"`
}

func (e *RemoteCommandError) Error() string {
	return fmt.Sprintf("%s failed with status code %d", e.Action, e.StatusCode)
}

// Payload returns the error record as the service body merged with action and data.
func (e *RemoteCommandError) Payload() map[string]any {
	payload := make(map[string]any, len(e.Fields)+3)
	for k, v := range e.Fields {
		payload[k] = v
	}
	payload["statusCode"] = e.StatusCode
	payload["action"] = e.Action
	payload["data"] = e.Data
	return payload
}

// TransportError reports a failure to reach the service or to decode its answer.
type TransportError struct {
	Action string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("transport: %v", e.Err)
	}
	return fmt.Sprintf("%s: transport: %v", e.Action, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
