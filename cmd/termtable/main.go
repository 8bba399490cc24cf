package main

import (
	"os"

	"github.com/dedene/termtable/internal/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute(os.Args[1:])))
}
