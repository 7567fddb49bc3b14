package domain

import (
	"sort"
	"strings"
)

// Company groups the postings of one employer. The board derives it from
// the loaded catalogue; it is never read from a feed.
type Company struct {
	Name     string `json:"name"`
	JobCount int    `json:"job_count"`
	Remote   bool   `json:"remote"` // at least one remote-friendly posting
}

// Companies summarizes jobs by employer, sorted by name.
func Companies(jobs []Job) []Company {
	idx := map[string]int{}
	out := []Company{}
	for _, j := range jobs {
		key := strings.ToLower(strings.TrimSpace(j.Company))
		if key == "" {
			continue
		}
		i, ok := idx[key]
		if !ok {
			i = len(out)
			idx[key] = i
			out = append(out, Company{Name: j.Company})
		}
		out[i].JobCount++
		if j.Remote {
			out[i].Remote = true
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return strings.ToLower(out[a].Name) < strings.ToLower(out[b].Name)
	})
	return out
}
