package httpapi

import (
	"net/http"

	"trabaho-board/internal/catalog"
)

type HealthHandler struct {
	Store *catalog.Store
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	WriteJSON(w, http.StatusOK, map[string]any{
		"ok":     !snap.Failed(),
		"status": snap.Status,
		"jobs":   len(snap.Jobs),
	})
}
