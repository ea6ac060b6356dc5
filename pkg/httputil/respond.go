package httputil

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError emits the {"error": ...} body every failing endpoint uses.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, errorResponse{Error: message})
}

// WriteServerError hides store failures behind the generic 500 body.
func WriteServerError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "Internal Server Error")
}

func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, messageResponse{Message: message})
}
