package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trabaho-board/internal/config"
	"trabaho-board/internal/domain"
	"trabaho-board/internal/events"
	"trabaho-board/internal/store"
)

type recorder struct {
	mu    sync.Mutex
	types []string
}

func (r *recorder) Publish(evt string) {
	var e events.Event
	_ = json.Unmarshal([]byte(evt), &e)
	r.mu.Lock()
	r.types = append(r.types, e.Type)
	r.mu.Unlock()
}

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func load(t *testing.T, l Loader) (*Store, Snapshot) {
	t.Helper()
	st := NewStore()
	assert.True(t, st.Snapshot().Loading())
	snap := l.Load(context.Background(), st)
	select {
	case <-st.Done():
	default:
		t.Fatal("store not settled after Load")
	}
	return st, snap
}

func TestLiteralLoad(t *testing.T) {
	rec := &recorder{}
	st, snap := load(t, Loader{Sources: []Source{NewLiteral()}, Events: rec})

	require.Equal(t, StatusReady, snap.Status)
	require.Len(t, snap.Jobs, 5)
	assert.Equal(t, "1-junior-web-developer", snap.Jobs[0].ID)
	assert.Equal(t, "5-graphic-design-intern", snap.Jobs[4].ID)

	j, ok := st.Find("3-registered-nurse")
	require.True(t, ok)
	assert.Equal(t, "Pag-asa Medical Center", j.Company)

	assert.Equal(t, []string{events.TypeCatalogLoading, events.TypeCatalogLoaded}, rec.types)
}

func TestHTTPTransportFailure(t *testing.T) {
	srv := feedServer(t, http.StatusInternalServerError, `oops`)
	rec := &recorder{}

	_, snap := load(t, Loader{Sources: []Source{NewHTTPSource(srv.URL, time.Second)}, Events: rec})

	assert.True(t, snap.Failed())
	assert.False(t, snap.Loading())
	assert.Empty(t, snap.Jobs)
	assert.True(t, errors.Is(snap.Err, ErrTransport))
	assert.Equal(t, events.TypeCatalogFailed, rec.types[len(rec.types)-1])
}

func TestHTTPSchemaFailure(t *testing.T) {
	for _, body := range []string{`{"jobs":[]}`, `null`, ``, `"[]"`, `[{"title":`} {
		srv := feedServer(t, http.StatusOK, body)
		_, snap := load(t, Loader{Sources: []Source{NewHTTPSource(srv.URL, time.Second)}})

		assert.True(t, snap.Failed(), body)
		assert.True(t, errors.Is(snap.Err, ErrSchema), body)
	}
}

func TestHTTPEmptyArrayIsNotAnError(t *testing.T) {
	srv := feedServer(t, http.StatusOK, ` [ ] `)
	_, snap := load(t, Loader{Sources: []Source{NewHTTPSource(srv.URL, time.Second)}})

	assert.Equal(t, StatusReady, snap.Status)
	assert.True(t, snap.Empty())
	assert.NoError(t, snap.Err)
}

const mixedFeed = `[
  {"title":"Registered Nurse","company":"Pag-asa Medical Center","location":"Cebu","type":"Full-time","skills":["Nursing"," "]},
  {"title":"","company":"Nobody","location":"Cebu","type":"Full-time"},
  {"title":"Barista","company":"Kape Co","location":"Davao","type":"Part-time","skills":"coffee"},
  {"title":"  Rider  ","company":"Padala","location":"Davao","type":"Contract","applyLink":"javascript:alert(1)"},
  {"title":"Cook","company":"Lutong Bahay","location":"Davao","type":"Full-time"}
]`

func TestInvalidRecordsAreSkipped(t *testing.T) {
	srv := feedServer(t, http.StatusOK, mixedFeed)
	_, snap := load(t, Loader{Sources: []Source{NewHTTPSource(srv.URL, time.Second)}})

	require.Equal(t, StatusReady, snap.Status)
	require.Len(t, snap.Jobs, 2)
	assert.Equal(t, []string{"Nursing"}, snap.Jobs[0].Skills)
	assert.Equal(t, "2-cook", snap.Jobs[1].ID)
	assert.Equal(t, []string{}, snap.Jobs[1].Skills)

	require.Len(t, snap.Rejected, 3)
	assert.Equal(t, 1, snap.Rejected[0].Index)
	assert.Contains(t, snap.Rejected[0].Reason, "title is required")
	assert.Equal(t, 2, snap.Rejected[1].Index)
	assert.Equal(t, "malformed field: skills", snap.Rejected[1].Reason)
	assert.Contains(t, snap.Rejected[2].Reason, "applyLink")
}

func TestUndecodableRecordKeepsItsCause(t *testing.T) {
	raw, err := decodeFeed("test", []byte(`[
		{"title":"Barista","company":"Kape Co","location":"Davao","type":"Part-time","postedAt":"yesterday"},
		42,
		{"title":"Cook","company":"Lutong Bahay","location":"Davao","type":"Full-time"}
	]`))
	require.NoError(t, err)
	require.Len(t, raw, 3)

	jobs, rejected, err := Prepare(raw, false)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "1-cook", jobs[0].ID)
	assert.Nil(t, jobs[0].DecodeErr)

	assert.Equal(t, []Rejected{
		{Index: 0, Reason: "malformed field: postedAt"},
		{Index: 1, Reason: "record is not a JSON object"},
	}, rejected)

	_, _, err = Prepare(raw, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
	assert.Contains(t, err.Error(), "malformed field: postedAt")
}

func TestStrictFailsOnInvalidRecord(t *testing.T) {
	srv := feedServer(t, http.StatusOK, mixedFeed)
	_, snap := load(t, Loader{Sources: []Source{NewHTTPSource(srv.URL, time.Second)}, Strict: true})

	assert.True(t, snap.Failed())
	assert.True(t, errors.Is(snap.Err, ErrSchema))
}

func TestMultipleSourcesKeepOrderAndFailTogether(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`[{"title":"Cook","company":"Lutong Bahay","location":"Davao","type":"Full-time"}]`), 0o644))

	_, snap := load(t, Loader{Sources: []Source{FileSource{Path: path}, NewLiteral()}})
	require.Len(t, snap.Jobs, 6)
	assert.Equal(t, "Cook", snap.Jobs[0].Title)
	assert.Equal(t, "Junior Web Developer", snap.Jobs[1].Title)

	// one missing feed fails the whole load; nothing partial is published
	_, snap = load(t, Loader{Sources: []Source{NewLiteral(), FileSource{Path: filepath.Join(dir, "missing.json")}}})
	assert.True(t, snap.Failed())
	assert.Empty(t, snap.Jobs)
	assert.True(t, errors.Is(snap.Err, ErrTransport))
}

func TestLoadSettlesOnce(t *testing.T) {
	st := NewStore()
	first := Loader{Sources: []Source{NewLiteral()}}.Load(context.Background(), st)

	srv := feedServer(t, http.StatusBadGateway, ``)
	second := Loader{Sources: []Source{NewHTTPSource(srv.URL, time.Second)}}.Load(context.Background(), st)

	assert.Equal(t, StatusReady, second.Status)
	assert.Equal(t, first.Jobs, second.Jobs)
}

func TestSQLiteSource(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalogue.db")

	db, err := store.Open(ctx, path, false)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx, db.Pool))
	_, err = store.ReplaceJobs(ctx, db.Pool, SampleJobs()[:2])
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, snap := load(t, Loader{Sources: []Source{SQLiteSource{Path: path}}})
	require.Equal(t, StatusReady, snap.Status)
	require.Len(t, snap.Jobs, 2)
	assert.Equal(t, "Online ESL Teacher", snap.Jobs[1].Title)
	assert.True(t, snap.Jobs[1].Remote)
}

func TestSourcesFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Source.Feeds = []config.Feed{
		{Kind: config.KindLiteral},
		{Kind: config.KindFile, Path: "jobs.json"},
		{Kind: config.KindHTTP, URL: "https://trabaho.example.ph/jobs.json"},
		{Kind: config.KindSQLite, Path: "/srv/catalogue.db"},
	}

	srcs, err := SourcesFromConfig(cfg, "/data")
	require.NoError(t, err)
	require.Len(t, srcs, 4)
	assert.Equal(t, "literal", srcs[0].Name())
	assert.Equal(t, "file:"+filepath.Join("/data", "jobs.json"), srcs[1].Name())
	assert.Equal(t, "http:https://trabaho.example.ph/jobs.json", srcs[2].Name())
	assert.Equal(t, "sqlite:/srv/catalogue.db", srcs[3].Name())

	cfg.Source.Feeds = []config.Feed{{Kind: "ftp"}}
	_, err = SourcesFromConfig(cfg, "/data")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	j := Normalize(domain.Job{Title: "  Junior Web   Developer ", Skills: nil})
	assert.Equal(t, "Junior Web Developer", j.Title)
	assert.NotNil(t, j.Skills)
}

func TestValidApplyLink(t *testing.T) {
	assert.True(t, validApplyLink("mailto:hr@mabuhaytech.ph?subject=Application"))
	assert.True(t, validApplyLink("https://careers.example.ph/apply/42"))
	assert.False(t, validApplyLink("javascript:alert(1)"))
	assert.False(t, validApplyLink("https://"))
	assert.False(t, validApplyLink("/relative"))
}
