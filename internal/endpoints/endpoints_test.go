package endpoints

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	resolver := NewResolver("https://api.example.com")

	tests := []struct {
		name     string
		endpoint Endpoint
		want     string
	}{
		{"health", Health, "https://api.example.com/api/health"},
		{"predict", Predict, "https://api.example.com/api/predict"},
		{"train", Train, "https://api.example.com/api/train"},
		{"model info", ModelInfo, "https://api.example.com/api/model-info"},
		{"depreciation", Depreciation, "https://api.example.com/api/depreciation-curve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolver.Resolve(tt.endpoint); got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.endpoint, got, tt.want)
			}
		})
	}
}

func TestResolveNoDoubleSlashes(t *testing.T) {
	bases := []string{
		"http://localhost:5000",
		"https://api.example.com",
		"https://example.com/valuation",
		"",
	}

	for _, base := range bases {
		resolver := NewResolver(base)
		for _, e := range All() {
			got := resolver.Resolve(e)

			if got != base+e.Path() {
				t.Errorf("Resolve(%v) with base %q = %q, want %q", e, base, got, base+e.Path())
			}

			rest := got
			if i := strings.Index(got, "://"); i >= 0 {
				rest = got[i+3:]
			}
			if strings.Contains(rest, "//") {
				t.Errorf("Resolve(%v) with base %q contains a double slash: %q", e, base, got)
			}
		}
	}
}

func TestAllPathsAreRegistered(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range All() {
		if !strings.HasPrefix(e.Path(), "/") {
			t.Errorf("endpoint %v path %q does not start with a slash", e, e.Path())
		}
		if seen[e.Name()] {
			t.Errorf("endpoint name %q registered twice", e.Name())
		}
		seen[e.Name()] = true
	}

	if len(seen) != 5 {
		t.Errorf("got %d endpoints, want 5", len(seen))
	}
}

func TestResolveUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve of the zero Endpoint did not panic")
		}
	}()

	NewResolver("http://localhost:5000").Resolve(Endpoint{})
}
