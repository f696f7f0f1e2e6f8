package spintax

// Spintax syntax characters
const (
	StrOpenBrace  = "{"
	StrCloseBrace = "}"
	StrPipe       = "|"
)

// Generation mode constants
const (
	// ModeRandom draws distinct random variations (default).
	ModeRandom Mode = "random"
	// ModeAll materializes every combination.
	ModeAll Mode = "all"
	// ModeSequential returns the first N combinations in canonical order.
	ModeSequential Mode = "sequential"
)

// Generation defaults and hard output caps. The caps are the only
// safeguard against exponential blowup on adversarial templates; direct
// Template.ExpandAll calls are intentionally unguarded.
const (
	// DefaultCount is the variation count used when GenerateOptions
	// leaves Count unset.
	DefaultCount = 10

	// MaxAllVariations caps ModeAll output.
	MaxAllVariations = 1000

	// MaxSequentialVariations caps the ModeSequential count.
	MaxSequentialVariations = 1000

	// MaxRandomVariations caps the ModeRandom count.
	MaxRandomVariations = 100

	// DefaultAttemptMultiplier bounds random sampling: a request for N
	// distinct variations spends at most multiplier*N build attempts.
	DefaultAttemptMultiplier = 10
)
