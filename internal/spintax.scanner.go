package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Segment is one ordered unit of a scanned template. A segment with a
// single option is literal text; a segment with several options is a
// spin element (a choice point). Options may themselves contain further
// brace syntax, which is resolved lazily by the expander and sampler.
type Segment struct {
	Options []string
}

// IsSpin returns true if the segment offers more than one option.
func (s Segment) IsSpin() bool {
	return len(s.Options) > 1
}

// IsLiteral returns true if the segment is plain text (exactly one option).
func (s Segment) IsLiteral() bool {
	return len(s.Options) == 1
}

// Scanner splits raw spintax source into an ordered segment sequence.
// It never fails: an unmatched open brace degrades to a literal
// one-character segment and scanning resumes after it.
type Scanner struct {
	source string
	pos    int // Current byte position
	logger *zap.Logger
}

// NewScanner creates a scanner for the given source.
func NewScanner(source string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSource, len(source)))
	return &Scanner{
		source: source,
		pos:    0,
		logger: logger,
	}
}

// Scan processes the source and returns its segments in source order,
// covering the entire input with no gaps or overlaps. Empty input
// yields no segments.
func (s *Scanner) Scan() []Segment {
	var segments []Segment

	for !s.isAtEnd() {
		open := strings.IndexByte(s.source[s.pos:], CharOpenBrace)
		if open < 0 {
			// No further groups: the tail is one literal segment.
			segments = append(segments, Segment{Options: []string{s.source[s.pos:]}})
			s.pos = len(s.source)
			break
		}

		// Literal text before the group becomes its own segment.
		if open > 0 {
			segments = append(segments, Segment{Options: []string{s.source[s.pos : s.pos+open]}})
			s.pos += open
		}

		closeIdx, ok := s.matchingClose(s.pos)
		if !ok {
			// Unmatched open brace: degrade it to a literal character
			// and rescan from the next position.
			segments = append(segments, Segment{Options: []string{StrOpenBrace}})
			s.pos++
			continue
		}

		body := s.source[s.pos+1 : closeIdx]
		segments = append(segments, Segment{Options: SplitAlternatives(body)})
		s.pos = closeIdx + 1
	}

	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldSegments, len(segments)))
	return segments
}

// matchingClose finds the close brace matching the open brace at
// position open, tracking nesting depth. Returns false if the group is
// never closed.
func (s *Scanner) matchingClose(open int) (int, bool) {
	depth := 0
	for i := open; i < len(s.source); i++ {
		switch s.source[i] {
		case CharOpenBrace:
			depth++
		case CharCloseBrace:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// isAtEnd returns true if the cursor has consumed the whole source.
func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

// SplitAlternatives splits a group body on pipes occurring at the body's
// own top nesting level; pipes inside nested groups do not split. Empty
// pieces contribute no option, so an empty group body yields zero
// options and a trailing pipe yields nothing for its empty piece.
func SplitAlternatives(body string) []string {
	var options []string
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case CharOpenBrace:
			depth++
		case CharCloseBrace:
			depth--
		case CharPipe:
			if depth == 0 {
				if i > start {
					options = append(options, body[start:i])
				}
				start = i + 1
			}
		}
	}
	if start < len(body) {
		options = append(options, body[start:])
	}
	return options
}

// ContainsSpin reports whether s carries resolvable brace syntax: at
// least one open brace with a matching close. A stray open brace alone
// degrades to literal text when rescanned, so it must not count as
// spin syntax; treating it as such would send the expander and sampler
// into endless rescans of the same literal.
func ContainsSpin(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case CharOpenBrace:
			depth++
		case CharCloseBrace:
			// Any close seen with opens pending matches the most
			// recent open, so a resolvable group exists.
			if depth > 0 {
				return true
			}
		}
	}
	return false
}
