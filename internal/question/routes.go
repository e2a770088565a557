package question

import "github.com/go-chi/chi/v5"

// Routes is mounted under the admin group, which handles authentication.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListQuestions)
	r.Post("/", h.CreateQuestion)
	r.Get("/{id}", h.GetQuestion)
	r.Put("/{id}", h.UpdateQuestion)
	r.Delete("/{id}", h.DeleteQuestion)
	return r
}
