package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// EnsureUserConfig returns the path of config.yml inside dataDir, writing
// the built-in defaults there first if the file does not exist yet.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", errors.Wrap(err, "stat user config")
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", errors.Wrap(err, "create data dir")
	}
	if err := writeLocked(userPath, defaultYAML); err != nil {
		return "", err
	}
	return userPath, nil
}
