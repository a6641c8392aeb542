package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes a JSON error body in the same shape the API handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
