package client

import (
	"context"
	"net/http"

	"github.com/carvalue/carvalue-client/internal/endpoints"
	"github.com/carvalue/carvalue-client/internal/types"
)

// ModelInfo fetches the metadata of the model loaded by the backend.
// No time limit is added by the client.
func (c *Client) ModelInfo(ctx context.Context) Result[types.ModelInfo] {
	return execute[types.ModelInfo](ctx, c, request{
		endpoint:    endpoints.ModelInfo,
		method:      http.MethodGet,
		contentType: jsonContentType,
	})
}
