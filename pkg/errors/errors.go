package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Pipeline failure kinds. Each kind is a distinct, matchable failure signal;
// how to present them is the caller's business (CLI or API).
var (
	// ErrInput marks requests rejected before any work happens, e.g. empty
	// or whitespace-only text submitted for analysis.
	ErrInput = errors.New("invalid input")

	// ErrExtraction marks files that could not be read at the byte level.
	// A valid PDF with no extractable text is NOT an extraction error.
	ErrExtraction = errors.New("extraction failed")

	// ErrServiceUnavailable marks an unreachable inference endpoint.
	ErrServiceUnavailable = errors.New("inference service unavailable")

	// ErrProtocol marks an envelope that could not be decoded at all.
	ErrProtocol = errors.New("unexpected inference response")

	// ErrEmptyResponse marks an envelope that decoded fine but carried an
	// empty response text.
	ErrEmptyResponse = errors.New("empty inference response")
)

// InputError wraps a rejection reason as an ErrInput.
func InputError(detail string) error {
	return fmt.Errorf("%w: %s", ErrInput, detail)
}

// ExtractionError wraps a byte-level read failure as an ErrExtraction,
// keeping the underlying cause in the chain.
func ExtractionError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrExtraction, path, cause)
}

// ServiceUnavailableError carries actionable guidance alongside the cause.
func ServiceUnavailableError(guidance string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, guidance)
	}
	return fmt.Errorf("%w: %s: %w", ErrServiceUnavailable, guidance, cause)
}

// ProtocolError wraps an envelope decoding failure.
func ProtocolError(cause error) error {
	return fmt.Errorf("%w: %w", ErrProtocol, cause)
}

// ApiError is the JSON error body the HTTP surface responds with.
type ApiError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

var (
	ErrBadRequest = func(detail string) *ApiError { return NewApi(http.StatusBadRequest, "Bad Request", detail) }
	ErrNotFound   = func(detail string) *ApiError { return NewApi(http.StatusNotFound, "Not Found", detail) }
	ErrMethodNotAllowed = func(detail string) *ApiError {
		return NewApi(http.StatusMethodNotAllowed, "Method Not Allowed", detail)
	}
	ErrInternalServer = func(detail string) *ApiError {
		return NewApi(http.StatusInternalServerError, "Internal Server Error", detail)
	}
	ErrUpstreamUnavailable = func(detail string) *ApiError {
		return NewApi(http.StatusServiceUnavailable, "Inference Service Unavailable", detail)
	}
)

func NewApi(code int, message, detail string) *ApiError {
	return &ApiError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

// FromPipeline maps a pipeline failure onto the HTTP status it should carry.
func FromPipeline(err error) *ApiError {
	switch {
	case errors.Is(err, ErrInput):
		return ErrBadRequest(err.Error())
	case errors.Is(err, ErrExtraction):
		return NewApi(http.StatusUnprocessableEntity, "Unreadable File", err.Error())
	case errors.Is(err, ErrServiceUnavailable):
		return ErrUpstreamUnavailable(err.Error())
	case errors.Is(err, ErrProtocol), errors.Is(err, ErrEmptyResponse):
		return NewApi(http.StatusBadGateway, "Inference Response Invalid", err.Error())
	default:
		return ErrInternalServer(err.Error())
	}
}

func (e *ApiError) WithRequestID(requestID string) *ApiError {
	e.RequestID = requestID
	return e
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *ApiError) StatusCode() int {
	return e.Code
}
