package validation

import (
	errors "github.com/frahmantamala/finance-tracker/internal"
)

// Result collects field-scoped validation failures. DTO Validate methods
// append to a Result and the caller turns it into a single AppError, so every
// failing field reaches the client in one response.
type Result struct {
	fieldErrors []errors.ValidationError
}

func NewResult() *Result {
	return &Result{fieldErrors: make([]errors.ValidationError, 0)}
}

// AddFieldError records a failure for one field.
func (r *Result) AddFieldError(field, message string, code errors.ErrorCode) {
	r.fieldErrors = append(r.fieldErrors, errors.ValidationError{
		Field:   field,
		Message: message,
		Code:    string(code),
	})
}

func (r *Result) Valid() bool {
	return len(r.fieldErrors) == 0
}

// Err returns the aggregated AppError, or nil when every check passed.
func (r *Result) Err() *errors.AppError {
	if r.Valid() {
		return nil
	}
	return errors.NewValidationFieldErrors(r.fieldErrors)
}
