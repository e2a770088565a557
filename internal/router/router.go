package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quiz-arena/internal/achievement"
	"github.com/saulo-duarte/quiz-arena/internal/admin"
	"github.com/saulo-duarte/quiz-arena/internal/aiquiz"
	"github.com/saulo-duarte/quiz-arena/internal/auth"
	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/middlewares"
	"github.com/saulo-duarte/quiz-arena/internal/question"
	"github.com/saulo-duarte/quiz-arena/internal/score"
	"github.com/saulo-duarte/quiz-arena/internal/session"
	"github.com/saulo-duarte/quiz-arena/internal/user"
)

type RouterConfig struct {
	SessionHandler  *session.Handler
	ScoreHandler    *score.Handler
	UserHandler     *user.Handler
	QuestionHandler *question.Handler
	AIQuizHandler   *aiquiz.Handler
	AdminHandler    *admin.Handler
	AuthHandler     *auth.Handler
	CORSOrigins     []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/quiz", session.Routes(cfg.SessionHandler))
		r.Mount("/leaderboard", score.Routes(cfg.ScoreHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Get("/achievements", achievement.ListAchievements)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/logout", cfg.AuthHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware)

				r.Route("/questions", func(r chi.Router) {
					r.Post("/generate", cfg.AIQuizHandler.GenerateQuestions)
					r.Mount("/", question.Routes(cfg.QuestionHandler))
				})
				r.Mount("/", admin.Routes(cfg.AdminHandler))
			})
		})
	})
	return r
}
