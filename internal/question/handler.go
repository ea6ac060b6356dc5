package question

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"exam-bank/pkg/httputil"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		// Malformed numeric parameters are store-layer failures, same as
		// the store rejecting the bind value.
		log.Printf("Error parsing question filter: %v", err)
		httputil.WriteServerError(w)
		return
	}

	questions, err := h.service.Select(filter)
	if err != nil {
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, questions)
}

func (h *Handler) GetCount(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		log.Printf("Error parsing count filter: %v", err)
		httputil.WriteServerError(w)
		return
	}

	count, err := h.service.Count(filter)
	if err != nil {
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, count)
}

func parseFilter(r *http.Request) (Filter, error) {
	var filter Filter

	query := r.URL.Query()

	if raw := query.Get("questions"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return Filter{}, err
			}
			filter.IDs = append(filter.IDs, id)
		}
	}

	var err error
	if filter.CollectionID, err = intParam(query.Get("collection_id")); err != nil {
		return Filter{}, err
	}
	if filter.ModuleID, err = intParam(query.Get("module_id")); err != nil {
		return Filter{}, err
	}
	if filter.ExamID, err = intParam(query.Get("exam_id")); err != nil {
		return Filter{}, err
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Filter{}, err
		}
		// The store rejects a negative LIMIT bind value; 0 is valid and
		// selects nothing.
		if limit < 0 {
			return Filter{}, fmt.Errorf("negative limit %d", limit)
		}
		filter.Limit = &limit
	}

	return filter, nil
}

func intParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
