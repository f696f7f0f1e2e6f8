package main

import (
	"io"
	"math/rand"
	"os"
	"strings"

	spintax "github.com/itsatony/go-spintax"
	"github.com/urfave/cli/v3"
)

// templateInput returns the template from the first positional argument,
// falling back to reading all of stdin so templates can be piped in.
func templateInput(cmd *cli.Command) (string, error) {
	if arg := cmd.Args().First(); arg != "" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// newEngine builds an engine honoring the --seed flag for reproducible
// random output.
func newEngine(cmd *cli.Command) *spintax.Engine {
	seed := int64(cmd.Int(FlagNameSeed))
	if seed != 0 {
		return spintax.MustNew(spintax.WithRandSource(rand.NewSource(seed)))
	}
	return spintax.MustNew()
}
