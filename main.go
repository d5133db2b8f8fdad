package main

import "github.com/katalvlaran/gridsearch/cmd"

func main() {
	cmd.Execute()
}
