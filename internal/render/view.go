package render

import (
	"time"

	"trabaho-board/internal/catalog"
	"trabaho-board/internal/domain"
	"trabaho-board/internal/filter"
)

// Options carries the board chrome that does not come from the catalogue.
type Options struct {
	Title     string
	Types     []string
	Locations []string
	Nav       Nav
	Now       time.Time
}

type Card struct {
	ID          string
	Title       string
	Company     string
	Type        string
	Location    string
	RemoteLabel string
	Salary      string
	Description string
	Skills      []string
	PostedLabel string
	Apply       ApplyAction
	ApplyURL    string
}

type Chip struct {
	Value  string
	Label  string
	URL    string
	Active bool
}

type LocationOption struct {
	Value    string
	Label    string
	Selected bool
}

type NavLink struct {
	Label string
	URL   string
}

type View struct {
	Title  string
	Filter filter.State

	Chips     []Chip
	Locations []LocationOption

	NavOpen      bool
	NavToggleURL string
	NavLinks     []NavLink

	Loading       bool
	LoadingMsg    string
	EmployersMsg  string
	AboutMsg      string
	Error         string
	EmptyCatalog  string
	NoResults     string
	ShowNoResults bool

	Cards   []Card
	Total   int
	Matched int
}

// BuildView decides everything the page shows for a catalogue snapshot
// and filter state. It has no side effects.
func BuildView(snap catalog.Snapshot, st filter.State, opts Options) View {
	if st.ActiveType == "" {
		st.ActiveType = filter.AllTypes
	}
	v := View{
		Title:        opts.Title,
		Filter:       st,
		Chips:        chips(st, opts.Types, opts.Nav),
		Locations:    locations(st, opts.Locations),
		NavOpen:      opts.Nav.Open,
		NoResults:    MsgNoResults,
		LoadingMsg:   MsgLoading,
		EmployersMsg: MsgEmployers,
		AboutMsg:     MsgAbout,
		Cards:        []Card{},
	}

	// Nav links keep the panel state. NavFromRequest closes it on arrival
	// when the viewport is narrow.
	base := st.Query()
	v.NavToggleURL = "/?" + withNav(base, !opts.Nav.Open).Encode()
	linkQ := withNav(base, opts.Nav.Open)
	linkQ.Set("navlink", "1")
	v.NavLinks = []NavLink{
		{Label: "Mga Trabaho / Jobs", URL: "/?" + linkQ.Encode() + "#jobs"},
		{Label: "Para sa Employers / For Employers", URL: "/?" + linkQ.Encode() + "#employers"},
		{Label: "Tungkol / About", URL: "/?" + linkQ.Encode() + "#about"},
	}

	switch {
	case snap.Loading():
		v.Loading = true
		return v
	case snap.Failed():
		v.Error = MsgLoadError
		return v
	}

	v.Total = len(snap.Jobs)
	if v.Total == 0 {
		// nothing published is not the same as nothing matched
		v.EmptyCatalog = MsgEmptyCatalog
		return v
	}

	matched := filter.Apply(snap.Jobs, st)
	v.Matched = len(matched)
	if len(matched) == 0 {
		v.ShowNoResults = true
		return v
	}

	for _, j := range matched {
		v.Cards = append(v.Cards, cardFor(j, opts.Now))
	}
	return v
}

func cardFor(j domain.Job, now time.Time) Card {
	skills := make([]string, len(j.Skills))
	copy(skills, j.Skills)
	return Card{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Type:        j.Type,
		Location:    j.Location,
		RemoteLabel: RemoteLabel(j.Remote),
		Salary:      j.Salary,
		Description: j.Description,
		Skills:      skills,
		PostedLabel: PostedLabel(j, now),
		Apply:       ResolveApply(j),
		ApplyURL:    ApplyPath(j.ID),
	}
}

// chips always marks exactly one chip active. An active type missing
// from the configured list gets a chip of its own. Choosing a chip leaves
// the nav panel as it is.
func chips(st filter.State, types []string, nav Nav) []Chip {
	values := append([]string{filter.AllTypes}, types...)
	found := false
	for _, t := range values {
		if t == st.ActiveType {
			found = true
			break
		}
	}
	if !found {
		values = append(values, st.ActiveType)
	}

	out := make([]Chip, 0, len(values))
	for _, t := range values {
		label := t
		if t == filter.AllTypes {
			label = LabelAllTypes
		}
		q := st.WithType(t).Query()
		if nav.Open {
			q.Set("nav", "open")
		}
		url := "/"
		if len(q) > 0 {
			url = "/?" + q.Encode()
		}
		out = append(out, Chip{Value: t, Label: label, URL: url, Active: t == st.ActiveType})
	}
	return out
}

func locations(st filter.State, configured []string) []LocationOption {
	out := []LocationOption{{Value: "", Label: LabelAllLocations, Selected: st.Location == ""}}
	found := st.Location == ""
	for _, l := range configured {
		sel := l == st.Location
		found = found || sel
		out = append(out, LocationOption{Value: l, Label: l, Selected: sel})
	}
	if !found {
		out = append(out, LocationOption{Value: st.Location, Label: st.Location, Selected: true})
	}
	return out
}
