package main

import (
	"context"
	"fmt"
	"os"

	"github.com/simaogato/homedecide-backend/internal/cli"
)

func main() {
	root := cli.NewRootCommand(os.Stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
