package render

import (
	"net/http"
	"net/url"
	"strconv"
)

// Nav is the mobile navigation panel: closed or open.
type Nav struct {
	Open bool
}

func (n *Nav) Toggle() { n.Open = !n.Open }

// LinkActivated closes the panel when a nav link is followed on a narrow
// viewport. Wide viewports keep their state.
func (n *Nav) LinkActivated(narrow bool) {
	if narrow {
		n.Open = false
	}
}

// NavFromRequest restores the panel state carried in the query. A request
// that came from a nav link counts as a link activation.
func NavFromRequest(r *http.Request) Nav {
	q := r.URL.Query()
	n := Nav{Open: q.Get("nav") == "open"}
	if q.Get("navlink") != "" {
		n.LinkActivated(isNarrow(r))
	}
	return n
}

// isNarrow uses the viewport client hint when the browser sends one and
// assumes a narrow screen otherwise, since the panel only shows there.
func isNarrow(r *http.Request) bool {
	w, err := strconv.Atoi(r.Header.Get("Sec-CH-Viewport-Width"))
	if err != nil || w <= 0 {
		return true
	}
	return w <= narrowViewportWidth
}

func withNav(q url.Values, open bool) url.Values {
	out := url.Values{}
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	if open {
		out.Set("nav", "open")
	} else {
		out.Set("nav", "closed")
	}
	return out
}
