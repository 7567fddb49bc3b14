package commands

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"trabaho-board/internal/catalog"
	"trabaho-board/internal/store"
)

// SeedCmd imports a JSON feed into a SQLite catalogue that a `sqlite`
// feed can then serve.
var SeedCmd = &cobra.Command{
	Use:   "seed <feed.json>",
	Short: "Import a JSON feed into a SQLite catalogue",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

var (
	seedDBPath string
	seedStrict bool
)

func init() {
	SeedCmd.Flags().StringVar(&seedDBPath, "db", "catalog.db", "Catalogue database (relative to the data dir)")
	SeedCmd.Flags().BoolVar(&seedStrict, "strict", false, "Fail on the first invalid record instead of skipping it")
}

func runSeed(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}
	dbPath := seedDBPath
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(dir, dbPath)
	}

	ctx := cmd.Context()
	raw, err := catalog.FileSource{Path: args[0]}.Load(ctx)
	if err != nil {
		return err
	}
	jobs, rejected, err := catalog.Prepare(raw, seedStrict)
	if err != nil {
		return err
	}
	for _, r := range rejected {
		pterm.Warning.Printfln("skipped record %d: %s", r.Index, r.Reason)
	}

	db, err := store.Open(ctx, dbPath, false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(ctx, db.Pool); err != nil {
		return errors.Wrap(err, "migrate catalogue")
	}
	n, err := store.ReplaceJobs(ctx, db.Pool, jobs)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("seeded %d jobs into %s (%d skipped)", n, dbPath, len(rejected))
	return nil
}
