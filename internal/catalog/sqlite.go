package catalog

import (
	"context"

	"github.com/cockroachdb/errors"

	"trabaho-board/internal/domain"
	"trabaho-board/internal/store"
)

// SQLiteSource reads a catalogue database produced by `trabaho seed`.
// The database is opened read-only.
type SQLiteSource struct {
	Path string
}

func (s SQLiteSource) Name() string { return "sqlite:" + s.Path }

func (s SQLiteSource) Load(ctx context.Context) ([]domain.Job, error) {
	db, err := store.Open(ctx, s.Path, true)
	if err != nil {
		return nil, errors.Mark(err, ErrTransport)
	}
	defer db.Close()

	jobs, err := store.ListJobs(ctx, db.Pool)
	if err != nil {
		return nil, errors.Mark(err, ErrSchema)
	}
	return jobs, nil
}
