// the client package calls the car price prediction backend.
// Every operation returns a Result: either the decoded response or a ClientError carrying a
// user-friendly message plus the detailed technical error for logging (see client/errors.go).
// Operations never return a plain error and never panic on network or backend failures.
package client

import (
	"log/slog"
	"net/http"
	"time"

	carvalue "github.com/carvalue/carvalue-client"
	"github.com/carvalue/carvalue-client/internal/endpoints"
	"github.com/carvalue/carvalue-client/internal/logger"
)

// Client handles communication with the prediction backend.
// A Client holds no per-call state and is safe for concurrent use.
type Client struct {
	resolver   *endpoints.Resolver
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

type Option func(*Client)

// WithTimeout sets the time limit applied to Predict.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying http client (tests use this to install mock transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for the backend at baseURL.
// The http client has no overall timeout: only Predict is time limited by the client,
// the other operations are bounded by the caller's context and the transport defaults.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		resolver:   endpoints.NewResolver(baseURL),
		httpClient: &http.Client{},
		timeout:    carvalue.DefaultRequestTimeout,
		logger:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.resolver.BaseURL()
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}
