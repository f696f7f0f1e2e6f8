package internal

// Character constants for the spintax grammar
const (
	CharOpenBrace  = '{'
	CharCloseBrace = '}'
	CharPipe       = '|'
)

// String constants
const (
	StrOpenBrace = "{"
)

// DefaultAttemptMultiplier bounds the sampler's retry loop: a request
// for n distinct variations spends at most multiplier*n build attempts.
const DefaultAttemptMultiplier = 10

// Log message constants
const (
	LogMsgScannerCreated = "spintax scanner created"
	LogMsgScanEnd        = "spintax scan finished"
	LogMsgExpandEnd      = "exhaustive expansion finished"
	LogMsgSampleEnd      = "sampling finished"
	LogMsgSampleBudget   = "sampling attempt budget exhausted"
)

// Log field name constants
const (
	LogFieldSource   = "source_bytes"
	LogFieldSegments = "segments"
	LogFieldResults  = "results"
	LogFieldAttempts = "attempts"
	LogFieldTarget   = "target"
)
