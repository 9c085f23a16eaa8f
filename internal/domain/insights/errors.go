package insights

import "fmt"

// RequestError marks invalid input detected before any model call is made.
// Handlers map it to a 400 response.
type RequestError struct {
	Reason string
}

func (e *RequestError) Error() string {
	return e.Reason
}

var (
	ErrAmbiguousProductRef = &RequestError{Reason: "product_id and inline product attributes are mutually exclusive"}
	ErrMissingProductRef   = &RequestError{Reason: "either product_id or inline product attributes are required"}
	ErrCompetitorsRequired = &RequestError{Reason: "competitor_analysis requires at least one competitor or include_competitors"}
	ErrTooFewProducts      = &RequestError{Reason: "at least 2 products are required for comparison"}
)

// InferenceErrorKind classifies why a model call failed
type InferenceErrorKind string

const (
	InferenceUnreachable   InferenceErrorKind = "unreachable"
	InferenceTimeout       InferenceErrorKind = "timeout"
	InferenceServerError   InferenceErrorKind = "server_error"
	InferenceEmptyResponse InferenceErrorKind = "empty_response"
)

// InferenceError is a typed failure from the inference endpoint. The
// orchestrator never propagates it; it is captured into the insight record.
type InferenceError struct {
	Kind    InferenceErrorKind
	Message string
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference %s: %s", e.Kind, e.Message)
}

// StorageError marks a persistence failure. Unlike inference failures it
// propagates to the caller: a silently lost insight is worse than a visible
// failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
