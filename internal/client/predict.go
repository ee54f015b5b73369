package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/carvalue/carvalue-client/internal/endpoints"
	"github.com/carvalue/carvalue-client/internal/types"
)

// Predict asks the backend for a price estimate of car.
//
// The call is bounded by the client's timeout; when it expires the request is cancelled
// and the result is a KindTimeout failure. The payload is sent as is.
func (c *Client) Predict(ctx context.Context, car types.CarData) Result[types.Valuation] {
	body, err := json.Marshal(car)
	if err != nil {
		return Failure[types.Valuation](NewClientInternalError(err, "marshaling predict request"))
	}

	return execute[types.Valuation](ctx, c, request{
		endpoint:    endpoints.Predict,
		method:      http.MethodPost,
		body:        body,
		contentType: jsonContentType,
		timeout:     c.timeout,
	})
}
