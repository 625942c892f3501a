package errors

import (
	"net/http"
)

type ErrorType string

const (
	ErrorTypeInternal   ErrorType = "INTERNAL"
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeAuth       ErrorType = "AUTHENTICATION"
	ErrorTypeBadRequest ErrorType = "BAD_REQUEST"
)

type AppError struct {
	Type     ErrorType           `json:"-"`
	Code     string              `json:"code"`
	Message  string              `json:"message"`
	Detail   string              `json:"detail,omitempty"`
	HTTPCode int                 `json:"-"`
	Raw      error               `json:"-"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:     ErrorTypeNotFound,
		Code:     "NOT_FOUND",
		Message:  message,
		HTTPCode: http.StatusNotFound,
	}
}

func NewValidationError(errors map[string][]string) *AppError {
	errorMessage := "The given data was invalid"
	for k := range errors {
		errorMessage = errors[k][0]
		break
	}

	return &AppError{
		Type:     ErrorTypeValidation,
		Message:  errorMessage,
		HTTPCode: http.StatusUnprocessableEntity,
		Errors:   errors,
	}
}

func NewAuthenticationError(message string) *AppError {
	return &AppError{
		Type:     ErrorTypeAuth,
		Code:     "UNAUTHORIZED",
		Message:  message,
		HTTPCode: http.StatusUnauthorized,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Type:     ErrorTypeInternal,
		Code:     "INTERNAL_ERROR",
		Message:  "An internal error occurred",
		Detail:   err.Error(),
		HTTPCode: http.StatusInternalServerError,
		Raw:      err,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Type:     ErrorTypeBadRequest,
		Code:     "BAD_REQUEST",
		Message:  message,
		HTTPCode: http.StatusBadRequest,
	}
}
