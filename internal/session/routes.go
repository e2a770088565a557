package session

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/start", h.StartQuiz)
	r.Post("/answer", h.SubmitAnswer)
	r.Get("/current", h.CurrentQuiz)
	r.Delete("/current", h.AbandonQuiz)
	return r
}
