package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// KeysResponse is the JSON response for /api/create-keys
type KeysResponse struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

// SignResponse is the JSON response for /api/sign
type SignResponse struct {
	Signature string `json:"signature"`
	Hash      string `json:"hash"`
}

// VerifyResponse is the JSON response for /api/verify.
// Error is only set when Status is "invalid".
type VerifyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse is the JSON error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	slog.Error("request error", "status", status, "message", message)
	writeJSON(w, status, ErrorResponse{Error: message})
}
