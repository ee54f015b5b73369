package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	carvalue "github.com/carvalue/carvalue-client"
	"github.com/carvalue/carvalue-client/internal/endpoints"
	"github.com/carvalue/carvalue-client/internal/version"
)

const jsonContentType = "application/json"

// request describes one outbound call
type request struct {
	endpoint    endpoints.Endpoint
	method      string
	body        []byte
	contentType string
	timeout     time.Duration // 0 = no limit added by the client
}

// execute performs r and decodes a successful response into T.
// All failures are converted to a ClientError.
func execute[T any](ctx context.Context, c *Client, r request) Result[T] {
	callCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	callLogger := c.logger.With(
		slog.String("request_id", requestID),
		slog.String("endpoint", r.endpoint.Name()),
		slog.String("method", r.method),
	)
	start := time.Now()

	status, body, clientErr := c.roundTrip(callCtx, r, requestID)
	if clientErr == nil {
		var out T
		if err := json.Unmarshal(body, &out); err != nil {
			clientErr = NewClientMalformedResponseError(status, err)
		} else {
			callLogger.Debug("backend request completed",
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
			)
			return Success(out)
		}
	}

	callLogger.Warn("backend request failed",
		slog.String("kind", clientErr.Kind.String()),
		slog.Int("status", clientErr.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("error", clientErr.LogMessage),
	)
	return Failure[T](clientErr)
}

// roundTrip sends the request and returns the status and body of a 2xx response
func (c *Client) roundTrip(ctx context.Context, r request, requestID string) (int, []byte, *ClientError) {
	url := c.resolver.Resolve(r.endpoint)

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, url, body)
	if err != nil {
		return 0, nil, NewClientInternalError(err, "creating "+r.endpoint.Name()+" request")
	}

	req.Header.Set("Content-Type", r.contentType)
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(carvalue.RequestIDHeader, requestID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, classifyTransportError(ctx, err)
	}
	defer res.Body.Close()

	data, readErr := io.ReadAll(res.Body)
	if readErr != nil && isTimeout(ctx, readErr) {
		return 0, nil, NewClientTimeoutError(readErr)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// a partially read body fails to parse and falls back to the status code message
		return res.StatusCode, nil, NewClientApiError(res.StatusCode, data)
	}

	if readErr != nil {
		return 0, nil, classifyTransportError(ctx, readErr)
	}

	return res.StatusCode, data, nil
}

func classifyTransportError(ctx context.Context, err error) *ClientError {
	switch {
	case isTimeout(ctx, err):
		return NewClientTimeoutError(err)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return NewClientCanceledError(err)
	default:
		return NewClientConnectionError(err)
	}
}

// isTimeout reports whether err was caused by a deadline: the call's own time limit, a
// deadline on the caller's context or a timeout configured on the transport.
func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
