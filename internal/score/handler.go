package score

import (
	"net/http"
	"strconv"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type leaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := DefaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			config.Error(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	entries, err := h.service.Leaderboard(r.Context(), r.URL.Query().Get("difficulty"), limit)
	if err != nil {
		log.WithError(err).Error("Failed to build leaderboard")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, leaderboardResponse{Leaderboard: entries})
}
