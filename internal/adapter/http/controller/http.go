package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/branch-ledger/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func logRequest(r *http.Request, payload any) {
	logger.Info("http request", logger.Fields{
		"method":  r.Method,
		"path":    r.URL.Path,
		"query":   r.URL.RawQuery,
		"payload": logger.SanitizePayload(payload),
	})
}

// statusFromMessage maps the service response message onto an HTTP
// status. Services signal the class of failure through the message.
func statusFromMessage(message string) int {
	switch message {
	case "validation failed":
		return http.StatusBadRequest
	case "Account not found", "Branch not found", "Teller not found", "No movie to recommend":
		return http.StatusNotFound
	case "Insufficient funds", "Insufficient branch reserve", "Branch does not have enough cash", "No teller available":
		return http.StatusConflict
	case "invalid pin":
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
