package usecase

import "errors"

// Sentinels shared across usecases. Handlers translate these into HTTP
// statuses; repositories never leak raw storage errors past this layer.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

// FieldError carries field-level validation detail to the response envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	return e.Fields[0].Field + ": " + e.Fields[0].Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}
