package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"exam-bank/pkg/httputil"

	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Email et mot de passe requis")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Email et mot de passe requis")
		return
	}

	if err := h.service.Register(req.Email, req.Password); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			httputil.WriteError(w, http.StatusBadRequest, "Cet utilisateur existe déjà")
			return
		}
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteMessage(w, http.StatusCreated, "Utilisateur créé avec succès")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusUnauthorized, "Identifiants incorrects")
		return
	}

	user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httputil.WriteError(w, http.StatusUnauthorized, "Identifiants incorrects")
			return
		}
		httputil.WriteServerError(w)
		return
	}

	// No token or session is issued; the caller only gets the identity.
	httputil.WriteJSON(w, http.StatusOK, user)
}
