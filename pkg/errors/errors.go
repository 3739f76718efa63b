package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

// ErrorCode identifies the failure class carried by an AppError.
type ErrorCode string

const (
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeDuplicate    ErrorCode = "DUPLICATE"
	CodeForeignKey   ErrorCode = "FOREIGN_KEY_VIOLATION"
	CodePersistence  ErrorCode = "PERSISTENCE_ERROR"
)

// Postgres error codes mapped to the taxonomy.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// AppError is the single error type handlers translate to HTTP responses.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error class to an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodePersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func DuplicateEmail() *AppError {
	return &AppError{Code: CodeDuplicate, Message: "Email already exists"}
}

// InvalidCredentials is returned for both an unknown email and a wrong
// password so callers cannot probe which accounts exist.
func InvalidCredentials() *AppError {
	return &AppError{Code: CodeValidation, Message: "Invalid Credentials"}
}

func ForeignKey(message string, err error) *AppError {
	return &AppError{Code: CodeForeignKey, Message: message, Err: err}
}

// Persistence echoes the driver message to the client. The original system
// exposed it for debugging and existing clients surface it verbatim.
func Persistence(err error) *AppError {
	return &AppError{Code: CodePersistence, Message: fmt.Sprintf("database error: %v", err), Err: err}
}

// FromDB translates a repository error into an AppError, classifying
// constraint violations by Postgres error code.
func FromDB(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return &AppError{Code: CodeDuplicate, Message: "Email already exists", Err: err}
		case pqForeignKeyViolation:
			return ForeignKey("referenced record does not exist", err)
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &AppError{Code: CodeNotFound, Message: "record not found", Err: err}
	}

	return Persistence(err)
}
