package cmd

import (
	"fmt"

	"github.com/arl/hpaexplore/explorer"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create an explorer run-settings file",
	Long: `Create a run-settings file in YAML format, prefilled with the
Explorer API's default options (§6).

If FILE is not provided, 'explore.yml' is used.`,
	Run: doConfig,
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func doConfig(cmd *cobra.Command, args []string) {
	path := "explore.yml"
	if len(args) >= 1 {
		path = args[0]
	}
	if ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path)); !ok {
		if err == nil {
			fmt.Println("aborted by user...")
		} else {
			fmt.Println("aborted,", err)
		}
		return
	}

	check(marshalYAMLFile(path, explorer.DefaultOptions()))
	fmt.Printf("run settings written to '%s'\n", path)
}
