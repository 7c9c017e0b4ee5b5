// Package errors provides custom error types for the Recipebox API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors. Invalid credentials on the token endpoint are a
// validation failure (400) in this API's contract, not a 401.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid or unknown token", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Unable to authenticate with provided credentials", StatusCode: http.StatusBadRequest}
)

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrMethodNotAllowed = &AppError{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed", StatusCode: http.StatusMethodNotAllowed}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound     = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail   = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusBadRequest}
	ErrPasswordTooShort = &AppError{Code: "PASSWORD_TOO_SHORT", Message: "Password must be at least 5 characters", StatusCode: http.StatusBadRequest}
)

// Tag and ingredient errors. Referencing a tag or ingredient that does not
// exist for the requesting user is a validation failure on the write, so
// these carry a 400 rather than a 404.
var (
	ErrTagNotFound        = &AppError{Code: "TAG_NOT_FOUND", Message: "Tag not found", StatusCode: http.StatusBadRequest}
	ErrIngredientNotFound = &AppError{Code: "INGREDIENT_NOT_FOUND", Message: "Ingredient not found", StatusCode: http.StatusBadRequest}
)

// Recipe errors.
var (
	ErrRecipeNotFound = &AppError{Code: "RECIPE_NOT_FOUND", Message: "Recipe not found", StatusCode: http.StatusNotFound}
)
