package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies a gateway failure. Callers branch on Kind instead of
// inspecting error messages.
type Kind int

const (
	// KindNetwork is a transport-level failure (DNS, connection reset).
	KindNetwork Kind = iota
	// KindRateLimited is an HTTP 429 from the upstream API.
	KindRateLimited
	// KindServer is an HTTP status >= 500.
	KindServer
	// KindClient is any other HTTP 4xx. Never retried.
	KindClient
	// KindTimeout means a single attempt exceeded its deadline.
	KindTimeout
	// KindInvalidResponse means the API answered but the payload was unusable.
	KindInvalidResponse
	// KindCanceled means the caller's context was canceled.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network_error"
	case KindRateLimited:
		return "rate_limited"
	case KindServer:
		return "server_error"
	case KindClient:
		return "client_error"
	case KindTimeout:
		return "timeout"
	case KindInvalidResponse:
		return "invalid_response"
	case KindCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Retryable reports whether another attempt may succeed.
func (k Kind) Retryable() bool {
	switch k {
	case KindNetwork, KindRateLimited, KindServer, KindTimeout:
		return true
	}
	return false
}

// Error is the single error type returned by providers and decorators.
type Error struct {
	Kind       Kind
	StatusCode int           // upstream HTTP status, 0 when none was received
	Attempts   int           // attempts made, filled in by the retry decorator
	Elapsed    time.Duration // wall time across all attempts
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Attempts > 1 {
		msg = fmt.Sprintf("%s after %d attempts", msg, e.Attempts)
	}
	if e.Err != nil {
		return fmt.Sprintf("ai gateway: %s: %v", msg, e.Err)
	}
	return "ai gateway: " + msg
}

func (e *Error) Unwrap() error { return e.Err }

// ConfigurationError is raised at construction when required settings are
// missing or invalid. It is fatal and never retried.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("llm configuration: %s: %s", e.Field, e.Message)
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsRetryable reports whether err carries a retryable Kind.
func IsRetryable(err error) bool {
	k, ok := KindOf(err)
	return ok && k.Retryable()
}

// ErrorType returns a short label suitable for metrics: the Kind label for
// gateway errors, "configuration" for configuration errors and "unknown"
// otherwise.
func ErrorType(err error) string {
	if err == nil {
		return ""
	}
	if k, ok := KindOf(err); ok {
		return k.String()
	}
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return "configuration"
	}
	return "unknown"
}

// kindForStatus maps an HTTP status code to a Kind.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500:
		return KindServer
	case status >= 400:
		return KindClient
	default:
		return KindInvalidResponse
	}
}

// statusError builds an *Error from an upstream HTTP status.
func statusError(status int, err error) *Error {
	return &Error{Kind: kindForStatus(status), StatusCode: status, Err: err}
}

// transportError classifies a failure that produced no HTTP status.
func transportError(err error) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Err: err}
	case errors.Is(err, context.Canceled):
		return &Error{Kind: KindCanceled, Err: err}
	default:
		return &Error{Kind: KindNetwork, Err: err}
	}
}

// asError returns a copy of the *Error in err's chain, or classifies err as
// a transport failure when it carries none.
func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		cp := *e
		return &cp
	}
	return transportError(err)
}
