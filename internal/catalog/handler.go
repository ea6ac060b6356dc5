package catalog

import (
	"net/http"

	"exam-bank/pkg/httputil"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.repo.ListExamClasses()
	if err != nil {
		httputil.WriteServerError(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, exams)
}

func (h *Handler) GetModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.repo.ListModules()
	if err != nil {
		httputil.WriteServerError(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, modules)
}

func (h *Handler) GetCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.repo.ListCollections()
	if err != nil {
		httputil.WriteServerError(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, collections)
}
