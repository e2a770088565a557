package session

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

const (
	CookieName = "quiz_session"
	HeaderName = "X-Quiz-Session"
)

type Handler struct {
	service   Service
	cookieTTL time.Duration
}

func NewHandler(s Service, cookieTTL time.Duration) *Handler {
	return &Handler{service: s, cookieTTL: cookieTTL}
}

// handleFrom reads the session handle from the header, falling back to the
// cookie when the header is absent or malformed.
func handleFrom(r *http.Request) (uuid.UUID, bool) {
	if id, err := uuid.Parse(strings.TrimSpace(r.Header.Get(HeaderName))); err == nil {
		return id, true
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

func (h *Handler) setCookie(w http.ResponseWriter, r *http.Request, handle uuid.UUID) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    handle.String(),
		Path:     "/",
		MaxAge:   int(h.cookieTTL / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

type startResponse struct {
	Success bool `json:"success"`
	*StartResult
}

func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Invalid body for quiz start")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if prev, ok := handleFrom(r); ok {
		req.Supersedes = prev
	}

	res, err := h.service.Start(r.Context(), req)
	if err != nil {
		log.WithError(err).Warn("Failed to start quiz")
		config.WriteError(w, err)
		return
	}

	h.setCookie(w, r, res.Handle)
	config.JSON(w, http.StatusOK, startResponse{Success: true, StartResult: res})
}

type answerResponse struct {
	Success bool `json:"success"`
	*AnswerResult
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	handle, ok := handleFrom(r)
	if !ok {
		config.WriteError(w, ErrNoActiveSession)
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Invalid body for quiz answer")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Answer == nil {
		config.WriteError(w, ErrAnswerRequired)
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), handle, *req.Answer)
	if err != nil {
		log.WithError(err).Warn("Failed to submit answer")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, answerResponse{Success: true, AnswerResult: result})
}

func (h *Handler) CurrentQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	handle, ok := handleFrom(r)
	if !ok {
		config.WriteError(w, ErrNoActiveSession)
		return
	}

	progress, err := h.service.Current(r.Context(), handle)
	if err != nil {
		log.WithError(err).Debug("No quiz to resume")
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, progress)
}

// AbandonQuiz drops the caller's session and clears the cookie. Missing
// sessions are not an error.
func (h *Handler) AbandonQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if handle, ok := handleFrom(r); ok {
		if err := h.service.Discard(r.Context(), handle); err != nil {
			log.WithError(err).Error("Failed to discard quiz session")
			config.WriteError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
