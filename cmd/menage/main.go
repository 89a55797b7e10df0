package main

import (
	"fmt"
	"os"

	"github.com/foyerlabs/menage/cmd/menage/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
