package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a config rejected by NormalizeAndValidate.
var ErrInvalid = errors.New("config validation failed")

// SaveAtomic validates cfg, then replaces path via tmp file and rename,
// keeping the previous version as path.bak.
func SaveAtomic(path string, cfg Config) error {
	normalized, vr := NormalizeAndValidate(cfg)
	if !vr.OK() {
		return errors.Wrap(ErrInvalid, "\n- "+strings.Join(vr.Errors, "\n- "))
	}

	b, err := yaml.Marshal(&normalized)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return writeLocked(path, b)
}

// writeLocked holds path.lock for the duration of the write so two
// processes sharing a data dir never interleave renames.
func writeLocked(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return errors.Wrap(err, "lock config")
	}
	defer func() { _ = lock.Unlock() }()

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return errors.Wrap(err, "write tmp config")
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return errors.Wrap(os.Rename(tmp, path), "replace config")
}
