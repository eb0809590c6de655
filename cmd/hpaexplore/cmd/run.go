package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arl/hpaexplore/explorer"
	"github.com/arl/hpaexplore/grid"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the exploration controller against a maze",
	Long: `Load a ground-truth grid and run settings, run explorer.Explore to
completion, and print the final coverage/iteration/trajectory summary.`,
	Run: doRun,
}

var (
	runMaze, runConfig, runStart string
)

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runMaze, "maze", "maze.yml", "ground-truth grid file")
	runCmd.Flags().StringVar(&runConfig, "config", "", "run-settings file (defaults used if empty)")
	runCmd.Flags().StringVar(&runStart, "start", "0,0", "agent start cell, \"row,col\"")
}

func doRun(cmd *cobra.Command, args []string) {
	var gf gridFile
	check(unmarshalYAMLFile(runMaze, &gf))
	truth, err := fromGridFile(gf)
	check(err)

	opts := explorer.DefaultOptions()
	if gf.RegionSize > 0 {
		opts.RegionSize = gf.RegionSize
	}
	if runConfig != "" {
		check(unmarshalYAMLFile(runConfig, &opts))
	}

	start, err := parseCell(runStart)
	check(err)

	res := explorer.Explore(truth, start, opts, nil)
	fmt.Printf("success=%v reason=%s iterations=%d coverage=%.2f%% trajectory=%d cells\n",
		res.Success, res.Metrics.TerminationReason, res.Metrics.Iterations,
		res.FinalCoverage*100, len(res.Trajectory))
}

func parseCell(s string) (grid.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("invalid cell %q, want \"row,col\"", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Cell{}, err
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Cell{}, err
	}
	return grid.Cell{Row: r, Col: c}, nil
}
