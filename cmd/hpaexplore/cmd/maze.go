package cmd

import (
	"fmt"

	"github.com/arl/hpaexplore/internal/mazegen"
	"github.com/spf13/cobra"
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "generate a random room-and-corridor ground-truth grid",
	Long: `Generate a random room-and-corridor ground-truth grid and write it
to FILE (YAML). Not part of the exploration core; a pure test-harness
generator.`,
	Run: doMaze,
}

var (
	mazeSize, mazeRegion int
	mazeSeed             int64
	mazeOut              string
)

func init() {
	RootCmd.AddCommand(mazeCmd)

	mazeCmd.Flags().IntVar(&mazeSize, "size", 256, "grid side length")
	mazeCmd.Flags().IntVar(&mazeRegion, "region", 16, "region size (must divide size)")
	mazeCmd.Flags().Int64Var(&mazeSeed, "seed", 1, "random seed")
	mazeCmd.Flags().StringVar(&mazeOut, "out", "maze.yml", "output file")
}

func doMaze(cmd *cobra.Command, args []string) {
	if mazeRegion <= 0 {
		fmt.Printf("error, region %d must be positive\n", mazeRegion)
		return
	}
	if mazeSize%mazeRegion != 0 {
		fmt.Printf("error, size %d is not divisible by region %d\n", mazeSize, mazeRegion)
		return
	}
	if ok, err := confirmIfExists(mazeOut, fmt.Sprintf("file %s already exists, overwrite? [y/N]", mazeOut)); !ok {
		if err == nil {
			fmt.Println("aborted by user...")
		} else {
			fmt.Println("aborted,", err)
		}
		return
	}

	g := mazegen.Generate(mazeSize, mazeRegion, mazeSeed)
	check(marshalYAMLFile(mazeOut, toGridFile(g, mazeRegion)))
	fmt.Printf("maze written to '%s' (%dx%d, region %d, seed %d)\n", mazeOut, mazeSize, mazeSize, mazeRegion, mazeSeed)
}
