package main

import (
	"fmt"
	"os"

	jumpmapcmder "github.com/papercomputeco/jumpmap/cmd/jumpmap"
)

func main() {
	cmd := jumpmapcmder.NewJumpmapCmd()
	cmd.SetArgs(jumpmapcmder.DispatchArgs(os.Args))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(jumpmapcmder.ExitCode(err))
	}
}
