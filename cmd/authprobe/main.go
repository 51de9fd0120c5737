package main

import (
	"os"

	probecmd "authprobe/pkg/cmd"
)

func run(args []string) int {
	root := probecmd.NewRootCommand(probecmd.DefaultConfig())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
