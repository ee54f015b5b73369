package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/carvalue/carvalue-client/internal/apperrors"
	"github.com/go-chi/chi/v5/middleware"
)

// RespondWithError writes the backend's error envelope: {"error": message}
func RespondWithError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, statusCode int, message string) {
	level := slog.LevelInfo
	switch {
	case statusCode >= 500:
		level = slog.LevelError
	case statusCode >= 400:
		level = slog.LevelWarn
	}

	logger.LogAttrs(r.Context(), level, "request failed",
		slog.Int("status", statusCode),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("error_message", message),
	)

	RespondWithJSON(w, statusCode, apperrors.ErrorResponse{Error: message})
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// RespondWithRaw writes body unchanged - used to simulate backends that send non-JSON bodies
func RespondWithRaw(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
