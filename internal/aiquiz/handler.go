package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if r.URL.Query().Get("import") == "true" {
		req.Import = true
	}

	resp, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		config.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if len(resp.Imported) > 0 {
		status = http.StatusCreated
	}
	config.JSON(w, status, resp)
}
