package filter

import (
	"net/url"
	"strings"

	"trabaho-board/internal/domain"
)

// AllTypes is the chip value that places no restriction on job type.
const AllTypes = "all"

// State holds the three active filter selections. The zero value is not
// usable as-is; start from Default or FromQuery.
type State struct {
	ActiveType string `json:"type"`
	Location   string `json:"location"`
	Keyword    string `json:"q"`
}

func Default() State {
	return State{ActiveType: AllTypes}
}

// FromQuery reads type, location and q. A blank type means AllTypes.
func FromQuery(q url.Values) State {
	st := State{
		ActiveType: strings.TrimSpace(q.Get("type")),
		Location:   q.Get("location"),
		Keyword:    q.Get("q"),
	}
	if st.ActiveType == "" {
		st.ActiveType = AllTypes
	}
	return st
}

// Query encodes the state back into URL parameters, omitting defaults.
func (s State) Query() url.Values {
	v := url.Values{}
	if s.ActiveType != "" && s.ActiveType != AllTypes {
		v.Set("type", s.ActiveType)
	}
	if s.Location != "" {
		v.Set("location", s.Location)
	}
	if strings.TrimSpace(s.Keyword) != "" {
		v.Set("q", s.Keyword)
	}
	return v
}

// WithType returns a copy with a different chip selected.
func (s State) WithType(t string) State {
	s.ActiveType = t
	return s
}

// NormalizedKeyword is the trimmed, lowercased keyword used for matching.
func (s State) NormalizedKeyword() string {
	return strings.ToLower(strings.TrimSpace(s.Keyword))
}

// Matches checks type, then location, then keyword, stopping at the first
// miss. Type and location compare exactly; the keyword is a
// case-insensitive substring test.
func Matches(j domain.Job, s State) bool {
	// 1) type
	if s.ActiveType != AllTypes && s.ActiveType != "" && j.Type != s.ActiveType {
		return false
	}

	// 2) location
	if s.Location != "" && j.Location != s.Location {
		return false
	}

	// 3) keyword
	kw := s.NormalizedKeyword()
	if kw == "" {
		return true
	}
	return strings.Contains(haystack(j), kw)
}

func haystack(j domain.Job) string {
	return strings.ToLower(j.Title + j.Company + j.Description + strings.Join(j.Skills, " "))
}

// Apply returns the matching jobs in catalogue order.
func Apply(jobs []domain.Job, s State) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, s) {
			out = append(out, j)
		}
	}
	return out
}
