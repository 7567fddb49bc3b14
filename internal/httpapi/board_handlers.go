package httpapi

import (
	"net/http"

	"trabaho-board/internal/config"
	"trabaho-board/internal/filter"
	"trabaho-board/internal/logger"
	"trabaho-board/internal/render"
)

// BoardHandler serves the HTML board. Every request renders from the
// current catalogue snapshot and the filter in its query string.
type BoardHandler struct {
	Deps
}

func (h BoardHandler) Index(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	st := filter.FromQuery(r.URL.Query())

	v := render.BuildView(h.Store.Snapshot(), st, render.Options{
		Title:     cfg.Board.Title,
		Types:     cfg.Board.Types,
		Locations: cfg.Board.Locations,
		Nav:       render.NavFromRequest(r),
		Now:       h.now(),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", "Sec-CH-Viewport-Width")
	if err := h.Renderer.Render(w, v); err != nil {
		logger.Named("http").Errorw("render board",
			logger.FieldRequestID, RequestIDFrom(r.Context()),
			logger.FieldError, err,
		)
		WriteError(w, r, http.StatusInternalServerError, CodeRenderFailed, "could not render board")
	}
}
