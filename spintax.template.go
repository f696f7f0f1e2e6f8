package spintax

import (
	"github.com/itsatony/go-spintax/internal"
)

// Template represents a parsed spintax source that can be expanded,
// sampled, and analyzed multiple times. Templates are immutable; every
// method derives fresh output from the parsed segments.
type Template struct {
	source   string
	segments []internal.Segment
	engine   *Engine
}

// newTemplate creates a template bound to the engine that parsed it.
func newTemplate(source string, segments []internal.Segment, engine *Engine) *Template {
	return &Template{
		source:   source,
		segments: segments,
		engine:   engine,
	}
}

// Source returns the original spintax source string.
func (t *Template) Source() string {
	return t.source
}

// SegmentCount returns the number of segments, literals included.
func (t *Template) SegmentCount() int {
	return len(t.segments)
}

// Segments returns every segment's option list in source order. Literal
// segments appear as single-entry lists. The result is a copy.
func (t *Template) Segments() [][]string {
	segments := make([][]string, 0, len(t.segments))
	for _, seg := range t.segments {
		options := make([]string, len(seg.Options))
		copy(options, seg.Options)
		segments = append(segments, options)
	}
	return segments
}

// SpinElements returns the option lists of segments offering more than
// one option, in source order. The result is a copy.
func (t *Template) SpinElements() [][]string {
	var elements [][]string
	for _, seg := range t.segments {
		if !seg.IsSpin() {
			continue
		}
		options := make([]string, len(seg.Options))
		copy(options, seg.Options)
		elements = append(elements, options)
	}
	return elements
}

// IsStatic returns true if the template contains no spin elements and
// therefore expands to exactly one string.
func (t *Template) IsStatic() bool {
	for _, seg := range t.segments {
		if seg.IsSpin() {
			return false
		}
	}
	return true
}

// Count returns the total number of distinct expansions without
// materializing them. Nested syntax inside options is counted
// recursively.
func (t *Template) Count() int {
	return t.expander().Count(t.segments)
}

// ExpandAll materializes every expansion in canonical order: options in
// source order, later segments varying fastest. Cost is exponential in
// the number of spin elements; callers on untrusted input should go
// through Generate, which caps output.
func (t *Template) ExpandAll() []string {
	return t.expander().ExpandAll(t.segments)
}

// First returns the first n expansions in canonical order. The full
// space is materialized and truncated, so cost follows ExpandAll.
func (t *Template) First(n int) []string {
	return t.expander().First(t.segments, n)
}

// Sample returns up to n distinct random expansions without building
// the full combination space. Fewer than n results means the attempt
// budget ran out; that is not an error.
func (t *Template) Sample(n int) []string {
	sampler := internal.NewSampler(t.engine.config.randIntn, t.engine.config.attemptMultiplier, t.engine.logger)
	return sampler.Sample(t.segments, n)
}

// Spin returns one random expansion, or the original source when
// sampling produces nothing.
func (t *Template) Spin() string {
	picked := t.Sample(1)
	if len(picked) == 0 {
		return t.source
	}
	return picked[0]
}

// Stats reports the template's combinatorial statistics.
func (t *Template) Stats() *Stats {
	return newStats(t)
}

func (t *Template) expander() *internal.Expander {
	return internal.NewExpander(t.engine.logger)
}
