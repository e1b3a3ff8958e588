package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// ErrorType classifies a model call failure so the user can be told what to do next
type ErrorType int

const (
	// ErrorTypeUnknown indicates nothing more specific could be determined
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeTransient indicates the service was unreachable, overloaded or slow
	ErrorTypeTransient
	// ErrorTypeAuth indicates the credentials were rejected
	ErrorTypeAuth
	// ErrorTypeContextLength indicates the prompt was too large for the model
	ErrorTypeContextLength
	// ErrorTypeCanceled indicates the user interrupted the request
	ErrorTypeCanceled
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeTransient:
		return "Transient"
	case ErrorTypeAuth:
		return "Auth"
	case ErrorTypeContextLength:
		return "ContextLength"
	case ErrorTypeCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// HTTPStatusError is an interface for errors that have HTTP status codes
type HTTPStatusError interface {
	error
	HTTPStatusCode() int
}

// OpenAI-compatible clients render non-2xx replies as "status code: 401, ..."
var statusCodePattern = regexp.MustCompile(`status code: (\d{3})`)

// ClassifyError determines what kind of failure a model call produced
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	if errors.Is(err, context.Canceled) {
		return ErrorTypeCanceled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTypeTransient
	}

	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return ErrorTypeTransient
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrorTypeTransient
	}

	var statusErr HTTPStatusError
	if errors.As(err, &statusErr) {
		return classifyHTTPStatus(statusErr.HTTPStatusCode())
	}

	errMsg := strings.ToLower(err.Error())

	// Context length problems are reported as 400s, check them first
	contextKeywords := []string{
		"context length",
		"context_length",
		"maximum context",
		"token limit",
		"tokens exceeded",
	}
	for _, keyword := range contextKeywords {
		if strings.Contains(errMsg, keyword) {
			return ErrorTypeContextLength
		}
	}

	if m := statusCodePattern.FindStringSubmatch(errMsg); m != nil {
		code, _ := strconv.Atoi(m[1])
		return classifyHTTPStatus(code)
	}

	if strings.Contains(errMsg, "invalid api key") || strings.Contains(errMsg, "unauthorized") {
		return ErrorTypeAuth
	}

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "connection refused") {
		return ErrorTypeTransient
	}

	return ErrorTypeUnknown
}

// classifyHTTPStatus classifies HTTP status codes
func classifyHTTPStatus(statusCode int) ErrorType {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrorTypeAuth
	case http.StatusRequestEntityTooLarge:
		return ErrorTypeContextLength
	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		return ErrorTypeTransient
	default:
		if statusCode >= 500 {
			return ErrorTypeTransient
		}
		return ErrorTypeUnknown
	}
}

// Hint returns user-facing advice for a failed model call, or "" if there is none
func Hint(err error) string {
	switch ClassifyError(err) {
	case ErrorTypeTransient:
		return "The model service is unreachable or overloaded. Wait a moment and run the command again."
	case ErrorTypeAuth:
		return "The API key was rejected. Check the api_key of the selected model in your config."
	case ErrorTypeContextLength:
		return "The staged diff is too large for this model. Stage fewer files or pick a model with a larger context window."
	default:
		return ""
	}
}
