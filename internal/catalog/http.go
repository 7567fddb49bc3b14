package catalog

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"trabaho-board/internal/domain"
)

// maxFeedBytes caps a fetched feed.
const maxFeedBytes = 8 << 20

// HTTPSource fetches a JSON job array once. It never retries.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) HTTPSource {
	return HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (s HTTPSource) Name() string { return "http:" + s.URL }

func (s HTTPSource) Load(ctx context.Context) ([]domain.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request %s", s.URL)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Trabaho/1.0 (+board)")

	hc := s.Client
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetch %s", s.URL), ErrTransport)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 256))
		return nil, errors.Mark(
			errors.Newf("fetch %s: status %s body=%q", s.URL, res.Status, string(b)),
			ErrTransport,
		)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxFeedBytes+1))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read %s", s.URL), ErrTransport)
	}
	if len(b) > maxFeedBytes {
		return nil, errors.Wrapf(ErrSchema, "%s: feed larger than %d bytes", s.URL, maxFeedBytes)
	}
	return decodeFeed(s.Name(), b)
}
