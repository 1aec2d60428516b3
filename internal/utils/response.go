package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// APIResponse is the envelope every endpoint writes. Data, Message and
// Error are mutually optional; Success tells the client which to read.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondData writes a successful response carrying a payload.
func RespondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, APIResponse{Success: true, Data: data})
}

// RespondMessage writes a successful response carrying only a message.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Success: true, Message: message})
}

// RespondError writes a failure response. The optional devErr is logged
// server-side but the client only sees publicMessage.
func RespondError(w http.ResponseWriter, status int, publicMessage string, devErrs ...error) {
	writeJSON(w, status, APIResponse{Success: false, Error: publicMessage})

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
