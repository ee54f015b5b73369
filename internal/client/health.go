package client

import (
	"context"
	"net/http"

	"github.com/carvalue/carvalue-client/internal/endpoints"
	"github.com/carvalue/carvalue-client/internal/types"
)

// Health checks that the backend is up and whether its model has been trained.
// No time limit is added by the client.
func (c *Client) Health(ctx context.Context) Result[types.HealthStatus] {
	return execute[types.HealthStatus](ctx, c, request{
		endpoint:    endpoints.Health,
		method:      http.MethodGet,
		contentType: jsonContentType,
	})
}
