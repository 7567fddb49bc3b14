package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trabaho-board/internal/config"
	"trabaho-board/internal/domain"
	"trabaho-board/internal/events"
	"trabaho-board/internal/logger"
	"trabaho-board/internal/render"
)

type ApplyHandler struct {
	Deps
}

func (h ApplyHandler) lookup(w http.ResponseWriter, r *http.Request) (domain.Job, bool) {
	id := chi.URLParam(r, "id")
	j, ok := h.Store.Find(id)
	if !ok {
		WriteError(w, r, http.StatusNotFound, CodeJobNotFound, "no job with id "+id)
	}
	return j, ok
}

// Apply performs the apply control. The board links here with
// target=_blank, so the redirect lands in a new browsing context. A job
// without a link gets the notice and no navigation.
func (h ApplyHandler) Apply(w http.ResponseWriter, r *http.Request) {
	j, ok := h.lookup(w, r)
	if !ok {
		return
	}
	a := render.ResolveApply(j)
	if h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeApply, 1, map[string]any{
			"job_id":   a.JobID,
			"navigate": a.Navigate,
		}))
	}

	if a.Navigate {
		http.Redirect(w, r, a.URL, http.StatusSeeOther)
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.RenderNotice(w, render.NoticePage{Title: cfg.Board.Title, Notice: a.Notice}); err != nil {
		logger.Named("http").Errorw("render notice",
			logger.FieldRequestID, RequestIDFrom(r.Context()),
			logger.FieldError, err,
		)
		WriteError(w, r, http.StatusInternalServerError, CodeRenderFailed, "could not render notice")
	}
}

// Resolve reports what the apply control would do, without doing it.
func (h ApplyHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	j, ok := h.lookup(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, render.ResolveApply(j))
}
