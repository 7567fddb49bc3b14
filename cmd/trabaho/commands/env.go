package commands

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"trabaho-board/internal/config"
)

// DataDirEnv overrides where config.yml and relative feed paths live.
const DataDirEnv = "TRABAHO_DATA_DIR"

type environment struct {
	DataDir string
	CfgPath string
	Cfg     config.Config
	// Warnings from validation. The caller reports them once its output
	// is set up.
	Warnings []string
}

// feedDir is where relative feed paths resolve.
func (e environment) feedDir() string {
	if e.Cfg.App.DataDir != "" {
		return e.Cfg.App.DataDir
	}
	return e.DataDir
}

func dataDir() (string, error) {
	dir := os.Getenv(DataDirEnv)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create data dir %s", dir)
	}
	return dir, nil
}

// loadEnvironment bootstraps config.yml if needed, then loads and
// validates it. Errors abort; warnings are returned on the environment.
func loadEnvironment() (environment, error) {
	dir, err := dataDir()
	if err != nil {
		return environment{}, err
	}
	path, err := config.EnsureUserConfig(dir)
	if err != nil {
		return environment{}, errors.Wrap(err, "config bootstrap failed")
	}
	raw, err := config.Load(path)
	if err != nil {
		return environment{}, err
	}

	cfg, vr := config.NormalizeAndValidate(raw)
	if !vr.OK() {
		return environment{}, errors.Wrapf(config.ErrInvalid, "%s: %s", path, strings.Join(vr.Errors, "; "))
	}
	return environment{DataDir: dir, CfgPath: path, Cfg: cfg, Warnings: vr.Warnings}, nil
}
