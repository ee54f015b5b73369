package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/carvalue/carvalue-client/internal/apperrors"
)

// Kind classifies a failed call.
type Kind int

const (
	// KindUnknown covers failures that happen before anything is sent (e.g. encoding the request)
	KindUnknown Kind = iota
	// KindTimeout means the time limit expired before the backend answered
	KindTimeout
	// KindTransport means the call failed at the network level or the response could not be read
	KindTransport
	// KindBackend means the backend answered with a non-2xx status
	KindBackend
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// user facing messages
const (
	msgTimeout           = "the request exceeded the time limit, please try again"
	msgCanceled          = "the request was cancelled"
	msgConnection        = "unable to connect to the valuation service"
	msgMalformedResponse = "the valuation service returned a malformed response"
	msgUnknown           = "an unknown error occurred while processing the request"
)

// ClientError represents an error encountered when communicating with the prediction backend
// StatusCode 0 = no HTTP response, >0 = HTTP response received
type ClientError struct {
	Kind        Kind   `json:"kind"`
	StatusCode  int    `json:"status_code"`
	UserMessage string `json:"user_message"`
	LogMessage  string `json:"log_message"`
}

func (e *ClientError) Error() string {
	return e.LogMessage
}

// UserError returns the user-friendly message
func (e *ClientError) UserError() string {
	return e.UserMessage
}

// NewClientTimeoutError creates a ClientError for a call cancelled by its time limit
func NewClientTimeoutError(err error) *ClientError {
	return &ClientError{
		Kind:        KindTimeout,
		UserMessage: msgTimeout,
		LogMessage:  fmt.Sprintf("timeout: %v", err),
	}
}

// NewClientCanceledError creates a ClientError for a call abandoned by the caller
func NewClientCanceledError(err error) *ClientError {
	return &ClientError{
		Kind:        KindTransport,
		UserMessage: msgCanceled,
		LogMessage:  fmt.Sprintf("cancelled: %v", err),
	}
}

// NewClientConnectionError creates a ClientError for network/connection issues.
// The user message includes the underlying cause when there is one.
func NewClientConnectionError(err error) *ClientError {
	userMsg := msgConnection
	if cause := transportCause(err); cause != "" {
		userMsg = fmt.Sprintf("%s: %s", msgConnection, cause)
	}

	return &ClientError{
		Kind:        KindTransport,
		UserMessage: userMsg,
		LogMessage:  fmt.Sprintf("network error: %v", err),
	}
}

// NewClientMalformedResponseError creates a ClientError for a 2xx response whose body could not be decoded
func NewClientMalformedResponseError(statusCode int, err error) *ClientError {
	return &ClientError{
		Kind:        KindTransport,
		StatusCode:  statusCode,
		UserMessage: msgMalformedResponse,
		LogMessage:  fmt.Sprintf("status %d with undecodable body: %v", statusCode, err),
	}
}

// NewClientInternalError creates a ClientError for internal errors, supply the error and an explanation of what was being done when the error occurred
func NewClientInternalError(err error, while string) *ClientError {
	return &ClientError{
		Kind:        KindUnknown,
		UserMessage: msgUnknown,
		LogMessage:  fmt.Sprintf("internal error: %v while %v", err, while),
	}
}

// NewClientApiError creates a ClientError from a non-2xx response sent by the backend.
// The backend's "error" field is used verbatim when the body carries one.
func NewClientApiError(statusCode int, body []byte) *ClientError {
	var serverErr apperrors.ErrorResponse

	if err := json.Unmarshal(body, &serverErr); err != nil || serverErr.Error == "" {
		return &ClientError{
			Kind:        KindBackend,
			StatusCode:  statusCode,
			UserMessage: fmt.Sprintf("request failed with HTTP status %d", statusCode),
			LogMessage:  fmt.Sprintf("backend status %d without error detail", statusCode),
		}
	}

	return &ClientError{
		Kind:        KindBackend,
		StatusCode:  statusCode,
		UserMessage: serverErr.Error,
		LogMessage:  fmt.Sprintf("backend status %d - %s", statusCode, serverErr.Error),
	}
}

// transportCause strips the *url.Error wrapper (method and URL) from a transport error
func transportCause(err error) string {
	if err == nil {
		return ""
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
