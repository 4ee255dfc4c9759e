// Package errors provides the standardized error taxonomy for the enrollment backend.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeSignatureInvalid ErrorCode = "SIGNATURE_INVALID"

	ErrCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeNotApproved      ErrorCode = "NOT_APPROVED"

	ErrCodeStoreAppendFailed ErrorCode = "STORE_APPEND_FAILED"
	ErrCodeStoreScanFailed   ErrorCode = "STORE_SCAN_FAILED"
	ErrCodeBlobUploadFailed  ErrorCode = "BLOB_UPLOAD_FAILED"
	ErrCodeOrderCreateFailed ErrorCode = "ORDER_CREATE_FAILED"
	ErrCodeMailSendFailed    ErrorCode = "MAIL_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// CodeOf extracts the ErrorCode from an error chain, or "" if the error
// is not a StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// NewValidationError creates a non-retryable bad-input error.
func NewValidationError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSignatureInvalidError creates a non-retryable payment authentication error.
func NewSignatureInvalidError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSignatureInvalid,
		Message:   "Invalid signature",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable lookup-miss error.
func NewNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResourceNotFound,
		Message:   "Resource not found",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotApprovedError creates a non-retryable approval-gate error.
func NewNotApprovedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotApproved,
		Message:   "Candidate is not approved",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreAppendFailedError creates a retryable tabular-store append error.
func NewStoreAppendFailedError(table string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreAppendFailed,
		Message:   "Tabular store append failed",
		Details:   fmt.Sprintf("table: %s, error: %s", table, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreScanFailedError creates a retryable tabular-store scan error.
func NewStoreScanFailedError(table string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreScanFailed,
		Message:   "Tabular store scan failed",
		Details:   fmt.Sprintf("table: %s, error: %s", table, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBlobUploadFailedError creates a retryable blob-store upload error.
func NewBlobUploadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBlobUploadFailed,
		Message:   "Resume upload failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrderCreateFailedError creates a retryable payment-gateway error.
func NewOrderCreateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOrderCreateFailed,
		Message:   "Unable to create order",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMailSendFailedError creates a retryable mail dispatch error.
func NewMailSendFailedError(kind string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMailSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("kind: %s, error: %s", kind, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
