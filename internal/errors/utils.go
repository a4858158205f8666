package errors

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// error categories for classification
const (
	CategoryDatabase   = "database"
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryNotFound   = "not_found"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

type errorInfo struct {
	category  string
	sanitized string
}

// analyzes an error and returns its category and sanitized message
func classifyError(err error) errorInfo {
	if err == nil {
		return errorInfo{CategoryUnknown, ""}
	}

	isProduction := os.Getenv("ENVIRONMENT") == "production"

	// database errors (pgx-specific)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errorInfo{
			category:  CategoryDatabase,
			sanitized: ternary(isProduction, "database operation failed", err.Error()),
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errorInfo{
			category:  CategoryNotFound,
			sanitized: ternary(isProduction, "resource not found", err.Error()),
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return errorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	if strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "no rows") {
		return errorInfo{
			category:  CategoryNotFound,
			sanitized: ternary(isProduction, "resource not found", err.Error()),
		}
	}

	if strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") ||
		strings.Contains(errMsg, "postgres") || strings.Contains(errMsg, "pgx") {
		return errorInfo{
			category:  CategoryDatabase,
			sanitized: ternary(isProduction, "database operation failed", err.Error()),
		}
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return errorInfo{
			category:  CategoryNetwork,
			sanitized: ternary(isProduction, "connection error occurred", err.Error()),
		}
	}

	if strings.Contains(errMsg, "validation") || strings.Contains(errMsg, "binding") ||
		strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "required") {
		return errorInfo{
			category:  CategoryValidation,
			sanitized: ternary(isProduction, "validation failed", err.Error()),
		}
	}

	return errorInfo{
		category:  CategoryUnknown,
		sanitized: ternary(isProduction, "an error occurred", err.Error()),
	}
}

// ternary helper for cleaner conditional assignment
func ternary(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}

	return falseVal
}
