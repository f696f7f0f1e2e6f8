package spintax

import (
	"github.com/itsatony/go-spintax/internal"
)

// Stats summarizes the combinatorial shape of a parsed template.
// Counting recurses into nested syntax but materializes nothing.
type Stats struct {
	// TotalCombinations is the number of distinct full expansions.
	TotalCombinations int

	// SpinElements is the number of segments offering more than one option.
	SpinElements int

	// AverageOptionsPerSpin is the mean option count taken across ALL
	// segments, literals included (a literal contributes 1). Zero when
	// the template has no segments.
	AverageOptionsPerSpin float64

	// Segments is the total segment count, literals included.
	Segments int

	// Literals is the number of single-option segments.
	Literals int

	// MaxDepth is the deepest brace nesting observed in the source.
	MaxDepth int

	// GeneratedCount is the number of variations actually produced.
	// Zero for Analyze results; filled in by Generate.
	GeneratedCount int
}

// newStats computes statistics for a parsed template.
func newStats(t *Template) *Stats {
	totalOptions := 0
	spins := 0
	literals := 0
	for _, seg := range t.segments {
		totalOptions += len(seg.Options)
		if seg.IsSpin() {
			spins++
		}
		if seg.IsLiteral() {
			literals++
		}
	}

	average := 0.0
	if len(t.segments) > 0 {
		average = float64(totalOptions) / float64(len(t.segments))
	}

	return &Stats{
		TotalCombinations:     t.Count(),
		SpinElements:          spins,
		AverageOptionsPerSpin: average,
		Segments:              len(t.segments),
		Literals:              literals,
		MaxDepth:              internal.MaxNestingDepth(t.source),
	}
}
