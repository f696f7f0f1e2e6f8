package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var spinCommand = &cli.Command{
	Name:      CmdNameSpin,
	Usage:     CmdUsageSpin,
	ArgsUsage: ArgsUsageTmpl,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  FlagNameSeed,
			Usage: FlagUsageSeed,
		},
	},
	Action: spinAction,
}

func spinAction(ctx context.Context, cmd *cli.Command) error {
	text, err := templateInput(cmd)
	if err != nil {
		return err
	}
	fmt.Println(newEngine(cmd).Spin(text))
	return nil
}
