package main

import "github.com/arl/hpaexplore/cmd/hpaexplore/cmd"

func main() {
	cmd.Execute()
}
