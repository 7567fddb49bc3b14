package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	_, vr := NormalizeAndValidate(cfg)
	assert.True(t, vr.OK(), "errors: %v", vr.Errors)

	assert.Equal(t, "Trabaho PH", cfg.Board.Title)
	assert.Equal(t, []Feed{{Kind: KindLiteral}}, cfg.Source.Feeds)
	assert.Contains(t, cfg.Board.Types, "Full-time")
}

func TestEnsureUserConfigWritesDefaultsOnce(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultYAML(), b)

	// user edits survive a second bootstrap
	require.NoError(t, os.WriteFile(path, []byte("app:\n  addr: :9000\n"), 0o644))
	_, err = EnsureUserConfig(dir)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.App.Addr)
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.Board.Types = []string{" Full-time ", "Full-time", "", "all"}
	cfg.Source.Feeds = []Feed{
		{Kind: " HTTP ", URL: "ftp://example.ph/jobs.json"},
		{Kind: "file"},
		{Kind: "carrier-pigeon"},
	}

	out, vr := NormalizeAndValidate(cfg)

	assert.Equal(t, []string{"Full-time", "all"}, out.Board.Types)
	assert.Equal(t, KindHTTP, out.Source.Feeds[0].Kind)
	assert.False(t, vr.OK())
	assert.Len(t, vr.Errors, 4)
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, DefaultYAML(), 0o644))

	cfg := Default()
	cfg.Board.Title = "Trabaho Cebu"
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Trabaho Cebu", got.Board.Title)

	bak, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, DefaultYAML(), bak)
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Source.Feeds = nil

	err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}
