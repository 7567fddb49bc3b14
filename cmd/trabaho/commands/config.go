package commands

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"trabaho-board/internal/config"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the board configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config.yml into the data dir",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check config.yml and list problems",
	RunE:  runConfigValidate,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config.yml (the old one is kept as config.yml.bak)")
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "config.yml")

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.Newf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveAtomic(path, config.Default()); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "config.yml")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	_, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		pterm.Warning.Println(w)
	}
	for _, e := range vr.Errors {
		pterm.Error.Println(e)
	}
	if !vr.OK() {
		return errors.Wrapf(config.ErrInvalid, "%s", path)
	}
	pterm.Success.Printfln("%s is valid", path)
	return nil
}
