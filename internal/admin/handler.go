package admin

import (
	"log"
	"net/http"

	"exam-bank/internal/models"
	"exam-bank/pkg/httputil"

	"gorm.io/gorm"
)

// Handler owns the one administrative operation: secret-gated, idempotent
// creation of the schema. Not part of steady-state traffic.
type Handler struct {
	db     *gorm.DB
	secret string
}

func NewHandler(db *gorm.DB, secret string) *Handler {
	return &Handler{db: db, secret: secret}
}

func (h *Handler) InitSchema(w http.ResponseWriter, r *http.Request) {
	// A missing configured secret keeps the gate closed rather than making
	// the empty string a valid credential.
	if h.secret == "" || r.URL.Query().Get("secret") != h.secret {
		httputil.WriteError(w, http.StatusForbidden, "Forbidden")
		return
	}

	// AutoMigrate creates each missing relation and leaves existing ones
	// alone, so a second call is a no-op.
	if err := h.db.AutoMigrate(models.All()...); err != nil {
		log.Printf("Error initializing schema: %v", err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Database initialized")
}
