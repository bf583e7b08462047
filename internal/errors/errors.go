// Package errors provides custom error types for the schoolchat client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrMissingElements = errors.New("missing UI elements")
	ErrEmptyMessage    = errors.New("empty message")
	ErrInvalidResponse = errors.New("invalid response format")
	ErrNoFile          = errors.New("no file selected")
	ErrInvalidBaseURL  = errors.New("invalid base URL")
)

// MissingElementsError lists the element ids that could not be bound
type MissingElementsError struct {
	IDs []string
}

func (e *MissingElementsError) Error() string {
	return fmt.Sprintf("missing UI elements: %v", e.IDs)
}

// Is allows comparison with sentinel errors
func (e *MissingElementsError) Is(target error) bool {
	return target == ErrMissingElements
}

// NewMissingElementsError creates a new MissingElementsError
func NewMissingElementsError(ids ...string) *MissingElementsError {
	return &MissingElementsError{IDs: ids}
}

// APIError represents a backend answer with an unexpected status
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NetworkError represents a transport failure (connection refused, reset, timeout)
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error at %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// ParseError represents a response body that is not the expected JSON
type ParseError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Endpoint, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(endpoint string, statusCode int, message string) *ParseError {
	return &ParseError{Endpoint: endpoint, StatusCode: statusCode, Message: message}
}

// UploadError wraps any failure that happened while uploading a file
type UploadError struct {
	FileName string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %q failed: %v", e.FileName, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// NewUploadError creates a new UploadError
func NewUploadError(fileName string, err error) *UploadError {
	return &UploadError{FileName: fileName, Err: err}
}

// IsNetworkError reports whether err is (or wraps) a NetworkError
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsParseError reports whether err is (or wraps) a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsUploadError reports whether err is (or wraps) an UploadError
func IsUploadError(err error) bool {
	var ue *UploadError
	return errors.As(err, &ue)
}

// IsAPIError reports whether err is (or wraps) an APIError
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// GetHTTPStatus extracts the HTTP status carried by err, or 0
func GetHTTPStatus(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint carried by err, or ""
func GetEndpoint(err error) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Endpoint
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Endpoint
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Endpoint
	}
	return ""
}
