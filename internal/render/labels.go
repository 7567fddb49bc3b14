package render

import (
	"time"

	"github.com/dustin/go-humanize"

	"trabaho-board/internal/domain"
)

// Static bilingual copy, Filipino first and English second.
const (
	MsgLoading          = "Naglo-load ng mga trabaho… / Loading jobs…"
	MsgLoadError        = "Hindi ma-load ang mga trabaho. Subukan ulit mamaya. / Jobs could not be loaded. Please try again later."
	MsgNoResults        = "Walang tugmang trabaho. Subukan ang ibang filter. / No jobs match your filters."
	MsgEmptyCatalog     = "Wala pang naka-post na trabaho. / No jobs have been published yet."
	MsgEmployers        = "Gusto mo bang mag-post ng trabaho? Ipadala ang detalye sa feed ng board. / Want to list a job? Add it to the board's feed."
	MsgAbout            = "Ang Trabaho PH ay simpleng listahan ng mga trabaho sa Pilipinas. / Trabaho PH is a simple board of jobs in the Philippines."
	NoticeNoApplyLink   = "Walang application link para sa trabahong ito. / No application link is available for this job."
	LabelRemote         = "🏠 Remote-friendly"
	LabelOnSite         = "🏢 On-site"
	LabelAllTypes       = "Lahat / All"
	LabelAllLocations   = "Lahat ng lokasyon / All locations"
	LabelPostedUnknown  = "—"
	narrowViewportWidth = 768
)

func RemoteLabel(remote bool) string {
	if remote {
		return LabelRemote
	}
	return LabelOnSite
}

// PostedLabel prefers the feed's free-text value and falls back to a
// relative time derived from postedAt.
func PostedLabel(j domain.Job, now time.Time) string {
	if j.Posted != "" {
		return j.Posted
	}
	if j.PostedAt != nil && !j.PostedAt.IsZero() {
		return humanize.RelTime(*j.PostedAt, now, "ago", "from now")
	}
	return LabelPostedUnknown
}
