package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "hpaexplore",
	Short: "run hierarchical-pathfinding grid exploration",
	Long: `This is the command-line harness accompanying hpaexplore:
	- generate random room-and-corridor ground-truth grids,
	- run the exploration controller against a grid (YAML config),
	- render a grid or known-map snapshot to the terminal.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
