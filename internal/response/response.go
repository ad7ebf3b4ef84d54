// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the standard API response envelope. Success payloads embed it so
// their fields sit next to "ok" at the top level.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Success returns an envelope with ok=true, for embedding in a payload struct.
func Success() Envelope {
	return Envelope{OK: true}
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with payload.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// Error writes an error response with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{OK: false, Error: message})
}

// PayloadTooLarge writes a 413 response.
func PayloadTooLarge(w http.ResponseWriter, message string) {
	Error(w, http.StatusRequestEntityTooLarge, message)
}

// TooLargeMessage is the client-facing message for a body over limit bytes.
func TooLargeMessage(limit int64) string {
	return fmt.Sprintf("File too large (max %d MB)", limit>>20)
}

// Text writes a plain-text body.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
