// Package backendtest runs an in-process stand-in for the car price prediction backend.
//
// The default handlers follow the real backend's contract: the same routes, the same
// validation failures reported as {"error": "..."} and the same response shapes. Tests
// can replace a route with Handle to simulate slow or misbehaving backends.
package backendtest

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/carvalue/carvalue-client/internal/endpoints"
	"github.com/carvalue/carvalue-client/internal/logger"
	"github.com/carvalue/carvalue-client/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RecordedRequest is a request as received by the backend
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

type Backend struct {
	// URL is the base address of the running server (no trailing slash)
	URL string

	server *httptest.Server
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	metrics   *types.TrainingMetrics
	features  []string
	overrides map[string]http.HandlerFunc
	requests  []RecordedRequest
}

type Option func(*Backend)

func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) {
		b.logger = l
	}
}

// WithTrainedModel starts the backend with a model already trained
func WithTrainedModel(metrics types.TrainingMetrics) Option {
	return func(b *Backend) {
		b.metrics = &metrics
		b.features = DefaultFeatures()
	}
}

// WithClock fixes the current time used to compute vehicle age
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

// New starts a backend that is shut down when the test ends.
func New(t testing.TB, opts ...Option) *Backend {
	t.Helper()

	b := &Backend{
		logger:    logger.Discard(),
		now:       time.Now,
		overrides: map[string]http.HandlerFunc{},
	}
	for _, opt := range opts {
		opt(b)
	}

	b.server = httptest.NewServer(b.routes())
	b.URL = b.server.URL
	t.Cleanup(b.server.Close)

	return b
}

func (b *Backend) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logger.RequestLogging(b.logger))
	r.Use(b.record)

	r.Get(endpoints.Health.Path(), b.dispatch(endpoints.Health, b.handleHealth))
	r.Post(endpoints.Predict.Path(), b.dispatch(endpoints.Predict, b.handlePredict))
	r.Post(endpoints.Train.Path(), b.dispatch(endpoints.Train, b.handleTrain))
	r.Get(endpoints.ModelInfo.Path(), b.dispatch(endpoints.ModelInfo, b.handleModelInfo))

	return r
}

// Handle replaces the handler for e until the backend is closed.
func (b *Backend) Handle(e endpoints.Endpoint, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overrides[e.Name()] = h
}

func (b *Backend) dispatch(e endpoints.Endpoint, fallback http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		h, ok := b.overrides[e.Name()]
		b.mu.Unlock()

		if ok {
			h(w, r)
			return
		}
		fallback(w, r)
	}
}

// record keeps a copy of every request for later inspection
func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// Requests returns the requests received so far, oldest first
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedRequest(nil), b.requests...)
}

// RequestCount returns how many requests were received for e
func (b *Backend) RequestCount(e endpoints.Endpoint) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, req := range b.requests {
		if req.Path == e.Path() {
			n++
		}
	}
	return n
}

// Close stops the server early; it is also called when the test ends.
func (b *Backend) Close() {
	b.server.Close()
}

func (b *Backend) model() (*types.TrainingMetrics, []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.metrics, b.features
}

// Stall returns a handler that never answers. It waits for the client to give up and then
// signals on cancelled (if not nil, the channel should be buffered - the send does not block).
// As a safety net it stops waiting after a minute.
func Stall(cancelled chan<- struct{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			select {
			case cancelled <- struct{}{}:
			default:
			}
		case <-time.After(time.Minute):
			w.WriteHeader(http.StatusGatewayTimeout)
		}
	}
}

// Delay runs next after d, unless the client goes away first.
func Delay(d time.Duration, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(d):
			next(w, r)
		}
	}
}
