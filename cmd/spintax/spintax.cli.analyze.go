package main

import (
	"context"
	"fmt"

	spintax "github.com/itsatony/go-spintax"
	"github.com/urfave/cli/v3"
)

var analyzeCommand = &cli.Command{
	Name:      CmdNameAnalyze,
	Usage:     CmdUsageAnalyze,
	ArgsUsage: ArgsUsageTmpl,
	Action:    analyzeAction,
}

func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	text, err := templateInput(cmd)
	if err != nil {
		return err
	}

	stats := spintax.Analyze(text)
	fmt.Printf(OutFmtCombinations, stats.TotalCombinations)
	fmt.Printf(OutFmtSpinElements, stats.SpinElements)
	fmt.Printf(OutFmtAvgOptions, stats.AverageOptionsPerSpin)
	fmt.Printf(OutFmtSegments, stats.Segments)
	fmt.Printf(OutFmtMaxDepth, stats.MaxDepth)
	return nil
}
