package config

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
)

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		Logger.WithError(err).Error("Failed to encode response")
	}
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// WriteError classifies err and writes the matching status with a client-safe
// message. The raw error is logged by the caller.
func WriteError(w http.ResponseWriter, err error) {
	Error(w, apperr.StatusCode(err), apperr.PublicMessage(err))
}
