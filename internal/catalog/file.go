package catalog

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"

	"trabaho-board/internal/domain"
)

// FileSource reads a JSON job array from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Load(ctx context.Context) ([]domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read feed %s", s.Path), ErrTransport)
	}
	return decodeFeed(s.Name(), b)
}
