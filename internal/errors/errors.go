package errors

import (
	"net/http"

	"codeberg.org/resumatch/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//     (embedding failures are the canonical case: the document survives unscored)
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "not_found")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeTooManyRequests = "too_many_requests"
)

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = classifyError(err).sanitized
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	details := ""

	if err != nil {
		details = classifyError(err).sanitized
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: "request validation failed",
		Details: details,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: classifyError(err).sanitized,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}
