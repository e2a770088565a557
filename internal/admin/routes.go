package admin

import "github.com/go-chi/chi/v5"

// Routes holds the read-only admin views. Authentication is applied by the
// caller.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/stats", h.GetStats)
	r.Get("/users", h.GetUsers)
	r.Get("/analytics", h.GetAnalytics)
	r.Get("/medals", h.GetMedals)
	r.Get("/logs", h.GetLogs)
	r.Get("/settings", h.GetSettings)
	r.Get("/export", h.Export)
	return r
}
