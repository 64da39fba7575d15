package model

import "fmt"

// ========================================
// Domain Errors
// ========================================

const (
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeConflict    = "CONFLICT"
	ErrCodePersistence = "PERSISTENCE_ERROR"
)

type UGCError struct {
	Code    string
	Message string
	Err     error
}

func (e *UGCError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *UGCError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string, err error) *UGCError {
	return &UGCError{Code: ErrCodeValidation, Message: message, Err: err}
}

func NewNotFoundError(message string) *UGCError {
	return &UGCError{Code: ErrCodeNotFound, Message: message}
}

func NewConflictError(message string) *UGCError {
	return &UGCError{Code: ErrCodeConflict, Message: message}
}

func NewPersistenceError(message string, err error) *UGCError {
	return &UGCError{Code: ErrCodePersistence, Message: message, Err: err}
}
