package client

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrViewBusy is returned when a mutation is attempted while the
// view's single in-flight request slot is taken.
var ErrViewBusy = errors.New("view is busy with another request")

// ValidationError carries the server's field → messages map (422).
// The caller can resubmit corrected input.
type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields(), ", "))
}

// Fields returns the rejected field names in stable order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// NotFoundError means the referenced id does not exist (404).
type NotFoundError struct {
	Message string `json:"message"`
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

// TransportError wraps network failures, timeouts, and malformed
// responses. The view keeps its prior state when one occurs.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
