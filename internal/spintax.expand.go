package internal

import (
	"go.uber.org/zap"
)

// Expander materializes the full combination space of a segment
// sequence and counts it without materializing. Both walks resolve
// nested brace syntax inside options by rescanning the option text on
// demand.
type Expander struct {
	logger *zap.Logger
}

// NewExpander creates a new expander.
func NewExpander(logger *zap.Logger) *Expander {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Expander{logger: logger}
}

// ExpandAll returns every fully-expanded string formed by choosing one
// option per segment, in canonical order: each segment's options are
// iterated in source order and later segments vary fastest, like a
// mixed-radix counter. Zero segments yield the single empty string.
func (e *Expander) ExpandAll(segments []Segment) []string {
	results := e.expand(segments)
	e.logger.Debug(LogMsgExpandEnd,
		zap.Int(LogFieldSegments, len(segments)),
		zap.Int(LogFieldResults, len(results)))
	return results
}

func (e *Expander) expand(segments []Segment) []string {
	if len(segments) == 0 {
		return []string{""}
	}

	head := e.expandOptions(segments[0])
	rest := e.expand(segments[1:])

	combined := make([]string, 0, len(head)*len(rest))
	for _, h := range head {
		for _, r := range rest {
			combined = append(combined, h+r)
		}
	}
	return combined
}

// expandOptions expands one segment's options in source order, recursing
// into any option that still carries brace syntax. A zero-option segment
// expands to nothing, collapsing the surrounding cross product.
func (e *Expander) expandOptions(seg Segment) []string {
	var expanded []string
	for _, opt := range seg.Options {
		if ContainsSpin(opt) {
			sub := NewScanner(opt, e.logger).Scan()
			expanded = append(expanded, e.expand(sub)...)
			continue
		}
		expanded = append(expanded, opt)
	}
	return expanded
}

// First returns the first n expansions in canonical order. The full
// space is materialized and truncated, so cost follows ExpandAll;
// callers bound n for large templates.
func (e *Expander) First(segments []Segment, n int) []string {
	all := e.ExpandAll(segments)
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n:n]
}

// Count returns the size of the combination space: per segment, options
// without nested syntax count 1 and nested options count their own
// recursive total; the per-segment sums multiply across the sequence.
// Zero segments count as 1 (the empty string). The result always equals
// len(ExpandAll) for the same input.
func (e *Expander) Count(segments []Segment) int {
	total := 1
	for _, seg := range segments {
		sum := 0
		for _, opt := range seg.Options {
			if ContainsSpin(opt) {
				sum += e.Count(NewScanner(opt, e.logger).Scan())
				continue
			}
			sum++
		}
		total *= sum
	}
	return total
}
