package main

import (
	"context"
	"fmt"

	spintax "github.com/itsatony/go-spintax"
	"github.com/urfave/cli/v3"
)

var generateCommand = &cli.Command{
	Name:      CmdNameGenerate,
	Usage:     CmdUsageGenerate,
	ArgsUsage: ArgsUsageTmpl,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    FlagNameCount,
			Aliases: []string{"n"},
			Value:   spintax.DefaultCount,
			Usage:   FlagUsageCount,
		},
		&cli.StringFlag{
			Name:    FlagNameMode,
			Aliases: []string{"m"},
			Value:   string(spintax.ModeRandom),
			Usage:   FlagUsageMode,
		},
		&cli.IntFlag{
			Name:  FlagNameSeed,
			Usage: FlagUsageSeed,
		},
	},
	Action: generateAction,
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	text, err := templateInput(cmd)
	if err != nil {
		return err
	}

	result, err := newEngine(cmd).Generate(text, &spintax.GenerateOptions{
		Count: int(cmd.Int(FlagNameCount)),
		Mode:  spintax.Mode(cmd.String(FlagNameMode)),
	})
	if err != nil {
		return err
	}

	for _, variation := range result.Variations {
		fmt.Println(variation)
	}
	return nil
}
