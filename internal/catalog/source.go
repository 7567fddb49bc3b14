package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"trabaho-board/internal/config"
	"trabaho-board/internal/domain"
	"trabaho-board/internal/logger"
)

// Load failures. Both are reported the same way to visitors; the split
// only matters for logs and tests.
var (
	ErrTransport = errors.New("catalog: feed transport failure")
	ErrSchema    = errors.New("catalog: feed is not a job array")
)

// Source produces the raw job list for one feed.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.Job, error)
}

// decodeFeed accepts only a top-level JSON array. Elements that cannot be
// decoded into a job come back as placeholders carrying DecodeErr, so
// Prepare can reject them individually with the real cause.
func decodeFeed(name string, b []byte) ([]domain.Job, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.Wrapf(ErrSchema, "%s: top-level value is not an array", name)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, errors.Wrapf(ErrSchema, "%s: %v", name, err)
	}

	out := make([]domain.Job, 0, len(raw))
	for i, r := range raw {
		j, err := decodeJob(r)
		if err != nil {
			logger.Named("catalog").Warnw("undecodable record",
				logger.FieldSource, name, "index", i, logger.FieldError, err.Error())
			j = domain.Job{DecodeErr: err}
		}
		out = append(out, j)
	}
	return out, nil
}

// decodeJob decodes one feed element. On failure it names the offending
// fields by decoding each one on its own.
func decodeJob(r json.RawMessage) (domain.Job, error) {
	var j domain.Job
	err := json.Unmarshal(r, &j)
	if err == nil {
		return j, nil
	}

	var fields map[string]json.RawMessage
	if json.Unmarshal(r, &fields) != nil {
		return domain.Job{}, errors.New("record is not a JSON object")
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var bad []string
	for _, k := range keys {
		one, _ := json.Marshal(map[string]json.RawMessage{k: fields[k]})
		var single domain.Job
		if json.Unmarshal(one, &single) != nil {
			bad = append(bad, k)
		}
	}
	if len(bad) == 0 {
		return domain.Job{}, errors.Wrap(err, "malformed record")
	}
	return domain.Job{}, errors.Newf("malformed field: %s", strings.Join(bad, ", "))
}

// SourcesFromConfig builds one Source per configured feed. Relative file
// and sqlite paths resolve against dataDir.
func SourcesFromConfig(cfg config.Config, dataDir string) ([]Source, error) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dataDir, p)
	}

	var out []Source
	for i, f := range cfg.Source.Feeds {
		switch f.Kind {
		case config.KindLiteral:
			out = append(out, NewLiteral())
		case config.KindFile:
			out = append(out, FileSource{Path: resolve(f.Path)})
		case config.KindHTTP:
			out = append(out, NewHTTPSource(f.URL, cfg.SourceTimeout()))
		case config.KindSQLite:
			out = append(out, SQLiteSource{Path: resolve(f.Path)})
		default:
			return nil, errors.Newf("source.feeds[%d]: unknown kind %q", i, f.Kind)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no feeds configured")
	}
	return out, nil
}
