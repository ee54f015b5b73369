// Package endpoints maps the backend's logical endpoint names to fully qualified URLs.
//
// The set of names is closed: Endpoint has no exported fields, so the only usable values
// are the ones declared here. Resolving anything else is a programming error and panics.
package endpoints

import "fmt"

// Endpoint is a logical backend endpoint name.
type Endpoint struct {
	name string
	path string
}

var (
	Health       = Endpoint{name: "health", path: "/api/health"}
	Predict      = Endpoint{name: "predict", path: "/api/predict"}
	Train        = Endpoint{name: "train", path: "/api/train"}
	ModelInfo    = Endpoint{name: "model_info", path: "/api/model-info"}
	Depreciation = Endpoint{name: "depreciation", path: "/api/depreciation-curve"}
)

// All returns every logical endpoint in declaration order.
func All() []Endpoint {
	return []Endpoint{Health, Predict, Train, ModelInfo, Depreciation}
}

// Name is the logical name, used in logs.
func (e Endpoint) Name() string {
	return e.name
}

// Path is the URL path registered for the endpoint.
func (e Endpoint) Path() string {
	return e.path
}

func (e Endpoint) String() string {
	return e.name
}

// Resolver builds endpoint URLs against a single base address.
// The base address is opaque and is not validated.
type Resolver struct {
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: baseURL}
}

// BaseURL returns the address the resolver was built with.
func (r *Resolver) BaseURL() string {
	return r.baseURL
}

// Resolve returns the base address concatenated with the path registered for e.
func (r *Resolver) Resolve(e Endpoint) string {
	if e.path == "" {
		panic(fmt.Sprintf("endpoints: resolve called with unregistered endpoint %q", e.name))
	}
	return r.baseURL + e.path
}
