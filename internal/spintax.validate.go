package internal

// CheckBalance reports whether braces in source nest exactly: every
// open brace has a matching close and no close appears before its open.
// This is a strict single-pass check and deliberately does not share
// the scanner's tolerance for unmatched braces.
func CheckBalance(source string) bool {
	depth := 0
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case CharOpenBrace:
			depth++
		case CharCloseBrace:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// MaxNestingDepth returns the deepest brace nesting observed in source.
// It is a source-shape heuristic, not a validity check: unmatched open
// braces still deepen the count and stray close braces are ignored.
func MaxNestingDepth(source string) int {
	depth := 0
	deepest := 0
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case CharOpenBrace:
			depth++
			if depth > deepest {
				deepest = depth
			}
		case CharCloseBrace:
			if depth > 0 {
				depth--
			}
		}
	}
	return deepest
}
