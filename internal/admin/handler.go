package admin

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load admin stats")
		config.WriteError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	users, err := h.service.Users(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users")
		config.WriteError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	analytics, err := h.service.Analytics(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load analytics")
		config.WriteError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, analytics)
}

func (h *Handler) GetMedals(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	medals, err := h.service.Medals(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to count medals")
		config.WriteError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]any{"medals": medals})
}

func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	logs, err := h.service.Logs(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load activity log")
		config.WriteError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]any{"logs": logs})
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Settings())
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	kind := ExportType(r.URL.Query().Get("type"))
	if kind == "" {
		kind = ExportScores
	}

	rows, err := h.service.Export(r.Context(), kind)
	if err != nil {
		log.WithError(err).Warn("Export failed")
		config.WriteError(w, err)
		return
	}

	filename := fmt.Sprintf("%s_export_%s.csv", kind, time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		log.WithError(err).Error("Failed to write CSV export")
	}
}
