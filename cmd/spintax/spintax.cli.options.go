package main

import (
	"context"
	"fmt"
	"strings"

	spintax "github.com/itsatony/go-spintax"
	"github.com/urfave/cli/v3"
)

var optionsCommand = &cli.Command{
	Name:      CmdNameOptions,
	Usage:     CmdUsageOptions,
	ArgsUsage: ArgsUsageTmpl,
	Action:    optionsAction,
}

func optionsAction(ctx context.Context, cmd *cli.Command) error {
	text, err := templateInput(cmd)
	if err != nil {
		return err
	}

	for _, element := range spintax.ExtractOptions(text) {
		fmt.Println(strings.Join(element, spintax.StrPipe))
	}
	return nil
}
