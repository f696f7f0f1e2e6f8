package main

import (
	"context"
	"fmt"

	spintax "github.com/itsatony/go-spintax"
	"github.com/urfave/cli/v3"
)

var validateCommand = &cli.Command{
	Name:      CmdNameValidate,
	Usage:     CmdUsageValidate,
	ArgsUsage: ArgsUsageTmpl,
	Action:    validateAction,
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	text, err := templateInput(cmd)
	if err != nil {
		return err
	}

	if !spintax.Validate(text) {
		return cli.Exit(OutInvalid, ExitCodeInvalid)
	}
	fmt.Println(OutValid)
	return nil
}
