package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"trabaho-board/internal/catalog"
	"trabaho-board/internal/filter"
)

// JobsCmd prints the catalogue through the same filter the board uses.
var JobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Print the filtered catalogue",
	RunE:  runJobs,
}

var (
	jobsType     string
	jobsLocation string
	jobsKeyword  string
)

func init() {
	JobsCmd.Flags().StringVar(&jobsType, "type", filter.AllTypes, "Job type chip (Full-time, Part-time, ...)")
	JobsCmd.Flags().StringVar(&jobsLocation, "location", "", "Exact location")
	JobsCmd.Flags().StringVar(&jobsKeyword, "q", "", "Keyword")
}

func runJobs(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	for _, w := range env.Warnings {
		pterm.Warning.Printfln("%s: %s", env.CfgPath, w)
	}
	sources, err := catalog.SourcesFromConfig(env.Cfg, env.feedDir())
	if err != nil {
		return err
	}

	st := catalog.NewStore()
	snap := catalog.Loader{
		Sources: sources,
		Strict:  env.Cfg.Board.Strict,
		Timeout: env.Cfg.SourceTimeout(),
	}.Load(cmd.Context(), st)
	if snap.Failed() {
		return snap.Err
	}
	if snap.Empty() {
		pterm.Info.Println("No jobs have been published yet.")
		return nil
	}

	state := filter.State{ActiveType: jobsType, Location: jobsLocation, Keyword: jobsKeyword}
	if strings.TrimSpace(state.ActiveType) == "" {
		state.ActiveType = filter.AllTypes
	}
	matched := filter.Apply(snap.Jobs, state)
	if len(matched) == 0 {
		pterm.Warning.Println("No jobs match your filters.")
		return nil
	}

	data := pterm.TableData{{"ID", "Title", "Company", "Type", "Location", "Salary"}}
	for _, j := range matched {
		data = append(data, []string{j.ID, j.Title, j.Company, j.Type, j.Location, j.Salary})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("%d of %d jobs", len(matched), len(snap.Jobs))
	return nil
}
