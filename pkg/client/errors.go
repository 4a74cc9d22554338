package client

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// NotFoundError is returned when the requested resource does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "resource not found"
}

// BadRequestError is returned when the server rejects the request,
// typically on validation failure. Body holds the raw response body.
type BadRequestError struct {
	Message string
	Body    []byte
}

func (e *BadRequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "bad request"
}

// RateLimitedError is returned on HTTP 429. RetryAfter is parsed from
// the Retry-After header when present.
type RateLimitedError struct {
	RetryAfter *time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("rate limited, retry after %s", *e.RetryAfter)
	}
	return "rate limited"
}

// APIError is returned for any other non-success response, including
// 401, 403 and 500.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsBadRequest reports whether err is a BadRequestError.
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

// IsRateLimited reports whether err is a RateLimitedError.
func IsRateLimited(err error) bool {
	var target *RateLimitedError
	return errors.As(err, &target)
}

// parseRetryAfter parses a Retry-After header value, which is either
// a delay in seconds or an HTTP-date.
func parseRetryAfter(value string) *time.Duration {
	if value == "" {
		return nil
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		d := time.Duration(seconds) * time.Second
		return &d
	}
	if at, err := http.ParseTime(value); err == nil {
		d := time.Until(at)
		if d < 0 {
			d = 0
		}
		return &d
	}
	return nil
}
