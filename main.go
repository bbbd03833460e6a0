package main

import (
	"fmt"
	"os"

	"marketsync/cmd"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "marketsync: %s\n", err)
		os.Exit(1)
	}
}
