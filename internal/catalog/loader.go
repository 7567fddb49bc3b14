package catalog

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"trabaho-board/internal/domain"
	"trabaho-board/internal/events"
	"trabaho-board/internal/logger"
)

// Loader fills a Store from its sources, once.
type Loader struct {
	Sources []Source
	Strict  bool
	Timeout time.Duration
	Events  events.Publisher
}

// Load fetches every source concurrently and settles st with the
// concatenated result in source order. Any source failure settles st as
// failed with no jobs. Calling Load on an already settled store does
// nothing and returns its snapshot.
func (l Loader) Load(ctx context.Context, st *Store) Snapshot {
	select {
	case <-st.Done():
		return st.Snapshot()
	default:
	}

	log := logger.Named("catalog")
	pub := l.Events
	if pub == nil {
		pub = events.Discard{}
	}
	pub.Publish(events.MakeEvent("", events.TypeCatalogLoading, 1, map[string]any{"sources": len(l.Sources)}))

	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := l.fetchAll(ctx)

	var snap Snapshot
	if err == nil {
		var jobs []domain.Job
		var rejected []Rejected
		jobs, rejected, err = Prepare(raw, l.Strict)
		snap = Snapshot{Status: StatusReady, Jobs: jobs, Rejected: rejected, LoadedAt: time.Now().UTC()}
	}
	if err != nil {
		snap = Snapshot{Status: StatusFailed, Jobs: []domain.Job{}, Err: err, LoadedAt: time.Now().UTC()}
	}

	if !st.settle(snap) {
		return st.Snapshot()
	}

	if snap.Failed() {
		log.Errorw("catalog load failed",
			logger.FieldError, err.Error(),
			"transport", errors.Is(err, ErrTransport),
			"schema", errors.Is(err, ErrSchema),
			logger.FieldDurationMS, time.Since(start).Milliseconds())
		pub.Publish(events.MakeEvent("", events.TypeCatalogFailed, 1, map[string]any{"error": err.Error()}))
		return snap
	}

	for _, r := range snap.Rejected {
		log.Warnw("skipped invalid record", "index", r.Index, "reason", r.Reason)
	}
	log.Infow("catalog loaded",
		logger.FieldCount, len(snap.Jobs),
		"skipped", len(snap.Rejected),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	pub.Publish(events.MakeEvent("", events.TypeCatalogLoaded, 1, map[string]any{
		"count":   len(snap.Jobs),
		"skipped": len(snap.Rejected),
	}))
	return snap
}

func (l Loader) fetchAll(ctx context.Context) ([]domain.Job, error) {
	if len(l.Sources) == 0 {
		return nil, errors.New("catalog: no sources")
	}

	g, gctx := errgroup.WithContext(ctx)
	results := make([][]domain.Job, len(l.Sources))

	for i, src := range l.Sources {
		i, src := i, src
		g.Go(func() error {
			jobs, err := src.Load(gctx)
			if err != nil {
				return errors.Wrapf(err, "source %s", src.Name())
			}
			results[i] = jobs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.Job
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
