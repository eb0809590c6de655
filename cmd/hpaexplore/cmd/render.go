package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "print an ASCII rendering of a grid or known-map snapshot",
	Long: `Render a ground-truth grid, or a known-map snapshot if --known is
given, to the terminal: '#' for WALL, '.' for WALKABLE, blank for UNKNOWN.`,
	Run: doRender,
}

var (
	renderMaze, renderKnown string
)

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderMaze, "maze", "maze.yml", "ground-truth grid file")
	renderCmd.Flags().StringVar(&renderKnown, "known", "", "known-map snapshot file (overrides --maze)")
}

func doRender(cmd *cobra.Command, args []string) {
	path := renderMaze
	if renderKnown != "" {
		path = renderKnown
	}

	var gf gridFile
	check(unmarshalYAMLFile(path, &gf))
	for _, row := range gf.Rows {
		fmt.Println(row)
	}
}
