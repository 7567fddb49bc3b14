package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires every board route behind the shared middleware.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, Recover, AccessLog, Cors)
	if d.Limiter != nil {
		r.Use(d.Limiter.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, CodeNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})

	// Board
	bh := BoardHandler{Deps: d}
	r.Get("/", bh.Index)

	// Jobs
	jh := JobsHandler{Store: d.Store}
	r.Get("/api/jobs", jh.List)
	r.Get("/api/companies", jh.Companies)

	// Apply
	ah := ApplyHandler{Deps: d}
	r.Get("/jobs/{id}/apply", ah.Apply)
	r.Get("/api/jobs/{id}/apply", ah.Resolve)

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	r.Get("/events", eh.ServeSSE)

	hh := HealthHandler{Store: d.Store}
	r.Get("/health", hh.Health)

	// Config
	ch := ConfigHandler{CfgVal: d.CfgVal}
	r.Get("/config", ch.Get)
	r.Get("/config/validate", ch.Validate)

	return r
}
