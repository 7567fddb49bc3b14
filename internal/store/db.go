package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

type DB struct {
	Pool *sql.DB
}

// Open opens the catalogue database at path. With readOnly the board can
// never write to a catalogue it is serving.
func Open(ctx context.Context, path string, readOnly bool) (*DB, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	if readOnly {
		dsn += "&mode=ro"
	}

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open catalogue")
	}

	pool.SetMaxOpenConns(1) // sqlite typically wants 1 writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.PingContext(pctx); err != nil {
		_ = pool.Close()
		return nil, errors.Wrapf(err, "ping catalogue %s", path)
	}

	return &DB{Pool: pool}, nil
}

func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}
