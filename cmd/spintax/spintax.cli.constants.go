package main

// Application identity constants
const (
	AppName  = "spintax"
	AppUsage = "parse and expand spintax templates"
)

// Command name constants
const (
	CmdNameSpin     = "spin"
	CmdNameGenerate = "generate"
	CmdNameAnalyze  = "analyze"
	CmdNameValidate = "validate"
	CmdNameOptions  = "options"
)

// Command usage constants
const (
	CmdUsageSpin     = "print one random expansion of the template"
	CmdUsageGenerate = "print multiple expansions of the template"
	CmdUsageAnalyze  = "print combinatorial statistics for the template"
	CmdUsageValidate = "check that braces in the template are balanced"
	CmdUsageOptions  = "print the option sets of each spin element"
	ArgsUsageTmpl    = "[template]"
)

// Flag name constants
const (
	FlagNameCount = "count"
	FlagNameMode  = "mode"
	FlagNameSeed  = "seed"
)

// Flag usage constants
const (
	FlagUsageCount = "number of variations to produce"
	FlagUsageMode  = "generation mode: random, all, or sequential"
	FlagUsageSeed  = "random seed (0 uses the shared source)"
)

// Output format constants
const (
	OutValid   = "valid"
	OutInvalid = "invalid"

	OutFmtCombinations = "combinations: %d\n"
	OutFmtSpinElements = "spin elements: %d\n"
	OutFmtAvgOptions   = "avg options per segment: %.2f\n"
	OutFmtSegments     = "segments: %d\n"
	OutFmtMaxDepth     = "max depth: %d\n"
)

// Exit code constants
const (
	ExitCodeInvalid = 1
)
