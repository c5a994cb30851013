package handler

import (
	"encoding/json"
	"net/http"
)

// resultResponse is the single response shape of the suggestion endpoints.
// Errors are reported as a one-element result.
type resultResponse struct {
	Result []string `json:"result"`
}

func writeResult(w http.ResponseWriter, code int, result []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resultResponse{Result: result})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeResult(w, code, []string{msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
