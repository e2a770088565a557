package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	u, err := h.service.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		log.WithError(err).Warn("Failed to fetch user stats")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
