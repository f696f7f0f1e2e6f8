package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  AppName,
		Usage: AppUsage,
		Commands: []*cli.Command{
			spinCommand,
			generateCommand,
			analyzeCommand,
			validateCommand,
			optionsCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
