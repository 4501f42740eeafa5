package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a safe message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError translates a storage-layer error into a code and a message that
// can be shown to the caller. Raw driver errors never leave the server.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Internal server error",
		}
	}

	errStrLower := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	// Postgres unique violation (23505); sqlite reports "UNIQUE constraint failed"
	if strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// Foreign key violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "Referenced record does not exist",
		}
	}

	// Check constraint violation (23514), e.g. rating range
	if strings.Contains(errStrLower, "check constraint") {
		return ErrorInfo{
			Code:    ValidationInvalidInput,
			Message: "Input is out of the allowed range",
		}
	}

	// Connection problems
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "Storage is temporarily unavailable, please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Internal server error",
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "stores") {
		return ErrorInfo{
			Code:    StoreEmailExists,
			Message: "Store with this email already exists",
		}
	}
	if strings.Contains(errLower, "email") || strings.Contains(errLower, "users") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "User with this email already exists",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "Record already exists",
	}
}

func notFoundMessage(context string) string {
	switch context {
	case "user":
		return "User not found"
	case "store":
		return "Store not found"
	case "rating":
		return "Rating not found"
	default:
		return "Record not found"
	}
}

// IsDuplicateKey reports whether the error is a unique-constraint violation.
// The constraint itself is the arbiter for duplicate emails and repeated
// rating submissions, so services branch on this instead of pre-checking.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errLower := strings.ToLower(err.Error())
	return strings.Contains(errLower, "duplicate key") ||
		strings.Contains(errLower, "unique constraint")
}

// ParseAndRespond parses an error and writes the mapped response
func ParseAndRespond(c *gin.Context, err error, context string) {
	errorInfo := ParseError(err, context)

	status := http.StatusInternalServerError
	switch errorInfo.Code {
	case ResourceNotFound:
		status = http.StatusNotFound
	case AuthEmailAlreadyExists, StoreEmailExists, ResourceAlreadyExists:
		status = http.StatusConflict
	case ValidationInvalidInput:
		status = http.StatusBadRequest
	}

	RespondWithError(c, status, errorInfo.Code, errorInfo.Message)
}
