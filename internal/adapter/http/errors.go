package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vast-core/internal/core/port"
	"vast-core/internal/core/vast"
)

type errorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// statusFor maps use case errors onto HTTP statuses.
func statusFor(err error) int {
	var (
		tooLarge *http.MaxBytesError
		limit    *vast.LimitExceededError
		syntax   *vast.SyntaxError
	)
	switch {
	case errors.As(err, &tooLarge), errors.As(err, &limit):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &syntax):
		return http.StatusBadRequest
	case errors.Is(err, vast.ErrStructural):
		return http.StatusUnprocessableEntity
	case errors.Is(err, port.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a JSON body. Internal errors are logged and their
// message is not sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
		h.writeJSON(w, status, errorResponse{Message: "internal error"})
		return
	}
	h.writeJSON(w, status, errorResponse{Code: errorCode(err), Message: err.Error()})
}

func errorCode(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return string(vast.CodeLimitExceeded)
	}
	if code := vast.ReadCode(err); code != vast.CodeUnknown {
		return string(code)
	}
	return ""
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
