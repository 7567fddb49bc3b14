package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg together with the
// problems found in it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// Chip and select values are compared exactly against job fields, so
	// only whitespace is trimmed and duplicates are exact-match.
	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.App.Addr = strings.TrimSpace(out.App.Addr)
	out.Board.Title = strings.TrimSpace(out.Board.Title)
	out.Board.Types = trimList(out.Board.Types)
	out.Board.Locations = trimList(out.Board.Locations)

	feeds := make([]Feed, 0, len(out.Source.Feeds))
	for _, f := range out.Source.Feeds {
		f.Kind = strings.ToLower(strings.TrimSpace(f.Kind))
		f.Path = strings.TrimSpace(f.Path)
		f.URL = strings.TrimSpace(f.URL)
		feeds = append(feeds, f)
	}
	out.Source.Feeds = feeds

	// ---- Validation rules ----

	if out.App.Addr == "" {
		res.addErr("app.addr is required")
	}
	if out.Board.Title == "" {
		res.addWarn("board.title is empty; the page header will be blank.")
	}

	if len(out.Source.Feeds) == 0 {
		res.addErr("source.feeds must list at least one feed")
	}
	for i, f := range out.Source.Feeds {
		switch f.Kind {
		case KindLiteral:
		case KindFile, KindSQLite:
			if f.Path == "" {
				res.addErr("source.feeds[%d].path is required for kind %q", i, f.Kind)
			}
		case KindHTTP:
			u, err := url.Parse(f.URL)
			if f.URL == "" || err != nil || u.Scheme == "" || u.Host == "" {
				res.addErr("source.feeds[%d].url must be an absolute URL", i)
			} else if u.Scheme != "http" && u.Scheme != "https" {
				res.addErr("source.feeds[%d].url must use http or https", i)
			}
		default:
			res.addErr("source.feeds[%d].kind %q is not one of literal, file, http, sqlite", i, f.Kind)
		}
	}
	if out.Source.TimeoutSeconds < 0 {
		res.addErr("source.timeout_seconds must be >= 0")
	}

	if len(out.Board.Types) == 0 {
		res.addWarn("board.types is empty; only the \"all\" chip will be shown.")
	}
	for _, t := range out.Board.Types {
		if t == "all" {
			res.addErr("board.types must not contain the reserved value \"all\"")
		}
	}

	if out.Limits.RequestsPerSecond < 0 {
		res.addErr("limits.requests_per_second must be >= 0")
	} else if out.Limits.RequestsPerSecond == 0 {
		res.addWarn("limits.requests_per_second is 0; rate limiting is disabled.")
	}
	if out.Limits.RequestsPerSecond > 0 && out.Limits.Burst <= 0 {
		res.addErr("limits.burst must be > 0 when rate limiting is enabled")
	}

	return out, res
}
