package embedder

import (
	"errors"
	"fmt"
)

var (
	// input is empty or whitespace after trimming; no remote call is made
	ErrEmptyInput = errors.New("embedder: empty input")

	// retries exhausted on HTTP 429
	ErrRateLimited = errors.New("embedder: rate limit exceeded after retries")
)

// RequestError reports a non-2xx response other than 429. These are
// never retried.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("embedder: request failed with status %d: %s", e.StatusCode, e.Body)
}
