package render

import (
	"net/url"

	"trabaho-board/internal/domain"
)

// ApplyAction is what activating a job's apply control does: open URL in
// a new browsing context, or show Notice and stay put.
type ApplyAction struct {
	JobID      string `json:"job_id"`
	URL        string `json:"url,omitempty"`
	NewContext bool   `json:"new_context"`
	Navigate   bool   `json:"navigate"`
	Notice     string `json:"notice,omitempty"`
}

func ResolveApply(j domain.Job) ApplyAction {
	if !j.HasApplyLink() {
		return ApplyAction{JobID: j.ID, Notice: NoticeNoApplyLink}
	}
	return ApplyAction{JobID: j.ID, URL: j.ApplyLink, NewContext: true, Navigate: true}
}

// ApplyPath is the board route that performs the apply action for a job.
func ApplyPath(id string) string {
	return "/jobs/" + url.PathEscape(id) + "/apply"
}
