package history

import (
	"encoding/json"
	"net/http"

	"exam-bank/pkg/httputil"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	var attempt Attempt
	if err := json.NewDecoder(r.Body).Decode(&attempt); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	entry, err := h.service.RecordAttempt(attempt)
	if err != nil {
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, entry)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("user_email")

	entries, err := h.service.GetHistory(userEmail)
	if err != nil {
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, entries)
}
