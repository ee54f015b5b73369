package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	carvalue "github.com/carvalue/carvalue-client"
	"github.com/carvalue/carvalue-client/internal/endpoints"
	"github.com/carvalue/carvalue-client/internal/types"
)

// Train uploads CSV training data and retrains the backend's model.
//
// The data is sent as a multipart form with a single file part, so this is the one call
// that does not use a JSON content type. Training can take a long time and no client
// time limit is applied; use ctx to bound it.
func (c *Client) Train(ctx context.Context, filename string, data io.Reader) Result[types.TrainingResult] {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(carvalue.TrainingFileField, filename)
	if err != nil {
		return Failure[types.TrainingResult](NewClientInternalError(err, "creating training form"))
	}
	if _, err := io.Copy(part, data); err != nil {
		return Failure[types.TrainingResult](NewClientInternalError(err, "reading training data"))
	}
	if err := mw.Close(); err != nil {
		return Failure[types.TrainingResult](NewClientInternalError(err, "closing training form"))
	}

	return execute[types.TrainingResult](ctx, c, request{
		endpoint:    endpoints.Train,
		method:      http.MethodPost,
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	})
}
