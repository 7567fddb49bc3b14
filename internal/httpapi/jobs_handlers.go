package httpapi

import (
	"net/http"

	"trabaho-board/internal/catalog"
	"trabaho-board/internal/domain"
	"trabaho-board/internal/filter"
)

type JobsHandler struct {
	Store *catalog.Store
}

type jobsResponse struct {
	Status   catalog.Status     `json:"status"`
	Filter   filter.State       `json:"filter"`
	Jobs     []domain.Job       `json:"jobs"`
	Total    int                `json:"total"`
	Matched  int                `json:"matched"`
	Rejected []catalog.Rejected `json:"rejected,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// List returns the jobs matching type, location and q. While the
// catalogue is loading or after it failed, jobs is empty.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	st := filter.FromQuery(r.URL.Query())
	snap := h.Store.Snapshot()

	resp := jobsResponse{Status: snap.Status, Filter: st, Jobs: []domain.Job{}}
	switch {
	case snap.Loading():
	case snap.Failed():
		resp.Error = "catalog_unavailable"
	default:
		resp.Jobs = filter.Apply(snap.Jobs, st)
		resp.Total = len(snap.Jobs)
		resp.Matched = len(resp.Jobs)
		resp.Rejected = snap.Rejected
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (h JobsHandler) Companies(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":    snap.Status,
		"companies": domain.Companies(snap.Jobs),
	})
}
