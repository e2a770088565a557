package question

import (
	"encoding/json"
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

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	filter := ListFilter{
		Difficulty: r.URL.Query().Get("difficulty"),
		Category:   r.URL.Query().Get("category"),
		ActiveOnly: r.URL.Query().Get("active") == "true",
	}

	questions, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"questions": questions,
		"total":     len(questions),
	})
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	q, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.WithError(err).Warn("Failed to fetch question")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid body for question creation")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to create question")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"question": q,
	})
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid body for question update")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to update question")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": q,
	})
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Warn("Failed to delete question")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "question deleted successfully",
	})
}
