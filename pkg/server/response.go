package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fakegen/pkg/logger"
)

type response struct {
	Data  any          `json:"data,omitempty"`
	Meta  any          `json:"meta,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError renders err. Errors other than apiError become a 500 and are logged.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var apiErr apiError
	if !errors.As(err, &apiErr) {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		apiErr = apiError{
			status:  http.StatusInternalServerError,
			code:    "internal_error",
			message: http.StatusText(http.StatusInternalServerError),
		}
	}
	writeJSON(w, apiErr.status, response{
		Error: &errorDetail{Code: apiErr.code, Message: apiErr.message},
	})
}
