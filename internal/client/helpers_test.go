package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/carvalue/carvalue-client/internal/types"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

// containsYear peeks at a predict request body without consuming it
func containsYear(r *http.Request, year int) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return false
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	var car types.CarData
	if err := json.Unmarshal(body, &car); err != nil {
		return false
	}
	return car.Year == year
}
