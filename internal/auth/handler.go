package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

type Handler struct {
	authenticator Authenticator
	tokenTTL      time.Duration
}

func NewHandler(a Authenticator, tokenTTL time.Duration) *Handler {
	return &Handler{authenticator: a, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authenticator.Authenticate(r.Context(), req.Username, req.Password); err != nil {
		log.WithField("username", req.Username).Warn("Failed admin login")
		config.WriteError(w, err)
		return
	}

	token, err := GenerateJWT(req.Username, RoleAdmin, h.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign admin token")
		config.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/api/admin",
		MaxAge:   int(h.tokenTTL / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})

	log.WithField("username", req.Username).Info("Admin logged in")
	config.JSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: time.Now().Add(h.tokenTTL).UTC(),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/api/admin",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})

	config.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "logout successful",
	})
}
