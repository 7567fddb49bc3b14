package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trabaho-board/internal/catalog"
	"trabaho-board/internal/domain"
	"trabaho-board/internal/filter"
)

func renderDoc(t *testing.T, v View) (*goquery.Document, []byte) {
	t.Helper()
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, v))
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return doc, buf.Bytes()
}

func hidden(doc *goquery.Document, sel string) bool {
	return doc.Find(sel).HasClass("hidden")
}

func TestRenderCards(t *testing.T) {
	snap := readySnap(t, catalog.SampleJobs())
	doc, _ := renderDoc(t, BuildView(snap, filter.Default(), testOpts()))

	cards := doc.Find("#jobsContainer article.job-card")
	require.Equal(t, 5, cards.Length())

	first := cards.First()
	assert.Equal(t, "Junior Web Developer", first.Find(".job-title").Text())
	assert.Equal(t, "Mabuhay Tech Solutions", first.Find(".job-company").Text())
	assert.Equal(t, "Full-time", first.Find(".job-badge").Text())
	assert.Equal(t, "🏢 On-site", first.Find(".meta-pill.remote").Text())
	assert.Equal(t, 4, first.Find(".skill-pill").Length())
	assert.Equal(t, "HTML", first.Find(".skill-pill").First().Text())
	assert.Equal(t, "Posted: 3 days ago", first.Find(".posted-date").Text())

	apply := first.Find("a.apply-btn")
	href, _ := apply.Attr("href")
	target, _ := apply.Attr("target")
	assert.Equal(t, "/jobs/1-junior-web-developer/apply", href)
	assert.Equal(t, "_blank", target)

	assert.True(t, hidden(doc, "#noResults"))
	assert.True(t, hidden(doc, "#loading"))
	assert.True(t, hidden(doc, "#loadError"))
	assert.True(t, hidden(doc, "#emptyCatalog"))

	active := doc.Find(".filter-chip.active")
	require.Equal(t, 1, active.Length())
	dt, _ := active.Attr("data-type")
	assert.Equal(t, filter.AllTypes, dt)
}

func TestRenderIsIdempotent(t *testing.T) {
	snap := readySnap(t, catalog.SampleJobs())
	st := filter.State{ActiveType: filter.AllTypes, Location: "Metro Manila", Keyword: "de"}

	_, a := renderDoc(t, BuildView(snap, st, testOpts()))
	_, b := renderDoc(t, BuildView(snap, st, testOpts()))
	assert.Equal(t, a, b)
}

func TestRenderNoResults(t *testing.T) {
	snap := readySnap(t, catalog.SampleJobs())
	doc, _ := renderDoc(t, BuildView(snap, filter.State{ActiveType: "Contract", Location: "Cebu"}, testOpts()))

	assert.Equal(t, 0, doc.Find("article.job-card").Length())
	assert.False(t, hidden(doc, "#noResults"))
	assert.Equal(t, MsgNoResults, doc.Find("#noResults").Text())
}

func TestRenderFailure(t *testing.T) {
	doc, _ := renderDoc(t, BuildView(catalog.Snapshot{Status: catalog.StatusFailed}, filter.Default(), testOpts()))

	assert.False(t, hidden(doc, "#loadError"))
	assert.True(t, hidden(doc, "#loading"))
	assert.True(t, hidden(doc, "#noResults"))
	assert.Equal(t, 0, doc.Find("article.job-card").Length())
}

func TestRenderMissingApplyLinkShowsNotice(t *testing.T) {
	snap := readySnap(t, []domain.Job{{Title: "Cook", Company: "Lutong Bahay", Location: "Davao", Type: "Full-time"}})
	doc, _ := renderDoc(t, BuildView(snap, filter.Default(), testOpts()))

	card := doc.Find("article.job-card")
	assert.Equal(t, 0, card.Find("a.apply-btn").Length())
	assert.Equal(t, NoticeNoApplyLink, card.Find("details.apply-btn .apply-notice").Text())
}

func TestRenderEscapesFeedText(t *testing.T) {
	snap := readySnap(t, []domain.Job{{
		Title: `<script>alert("x")</script>`, Company: "Kape & Co", Location: "Davao", Type: "Full-time",
	}})
	_, raw := renderDoc(t, BuildView(snap, filter.Default(), testOpts()))

	assert.False(t, strings.Contains(string(raw), `<script>alert`))
	assert.Contains(t, string(raw), "Kape &amp; Co")
}

func TestRenderNotice(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderNotice(&buf, NoticePage{Title: "Trabaho PH", Notice: NoticeNoApplyLink}))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, NoticeNoApplyLink, doc.Find(".apply-notice").Text())
}

func TestRenderNavTargetsExist(t *testing.T) {
	opts := testOpts()
	opts.Nav = Nav{Open: true}
	doc, _ := renderDoc(t, BuildView(catalog.Snapshot{Status: catalog.StatusLoading}, filter.Default(), opts))

	links := doc.Find("#navPanel a.nav-link")
	require.Equal(t, 3, links.Length())
	links.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		_, frag, ok := strings.Cut(href, "#")
		require.True(t, ok, href)
		assert.Equal(t, 1, doc.Find("#"+frag).Length(), frag)
	})

	nav, ok := doc.Find(`form.search-bar input[name="nav"]`).Attr("value")
	assert.True(t, ok)
	assert.Equal(t, "open", nav)
}

func TestRenderClosedNavOmitsFormState(t *testing.T) {
	doc, _ := renderDoc(t, BuildView(catalog.Snapshot{Status: catalog.StatusLoading}, filter.Default(), testOpts()))
	assert.Equal(t, 0, doc.Find(`form.search-bar input[name="nav"]`).Length())
	assert.False(t, doc.Find("#navPanel").HasClass("open"))
}
