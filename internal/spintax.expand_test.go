package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandSource(t *testing.T, source string) []string {
	t.Helper()
	return NewExpander(nil).ExpandAll(NewScanner(source, nil).Scan())
}

func TestExpandAll_CanonicalOrder(t *testing.T) {
	got := expandSource(t, "{A|B} {1|2}")

	assert.Equal(t, []string{"A 1", "A 2", "B 1", "B 2"}, got)
}

func TestExpandAll_RightmostVariesFastest(t *testing.T) {
	got := expandSource(t, "{A|B|C} {1|2|3}")

	require.Len(t, got, 9)
	assert.Equal(t, []string{"A 1", "A 2", "A 3", "B 1", "B 2"}, got[:5])
}

func TestExpandAll_NestedGroup(t *testing.T) {
	got := expandSource(t, "{A|B {1|2}}")

	assert.Equal(t, []string{"A", "B 1", "B 2"}, got)
}

func TestExpandAll_DeeplyNested(t *testing.T) {
	got := expandSource(t, "{a{b|c{d|e}}|f}")

	assert.Equal(t, []string{"ab", "acd", "ace", "f"}, got)
}

func TestExpandAll_EmptyInputIsSingleEmptyString(t *testing.T) {
	got := NewExpander(nil).ExpandAll(nil)

	assert.Equal(t, []string{""}, got)
}

func TestExpandAll_EmptyGroupCollapsesSpace(t *testing.T) {
	assert.Empty(t, expandSource(t, "{}"))
	assert.Empty(t, expandSource(t, "a{}b"))
}

func TestExpandAll_PlainText(t *testing.T) {
	assert.Equal(t, []string{"just text"}, expandSource(t, "just text"))
}

func TestExpandAll_UnmatchedOpenStaysLiteral(t *testing.T) {
	// The degraded "{" segment must expand as plain text instead of
	// being rescanned over and over.
	assert.Equal(t, []string{"{Hello"}, expandSource(t, "{Hello"))
	assert.Equal(t, []string{"a{b"}, expandSource(t, "a{b"))
	assert.Equal(t, []string{"{x", "{y"}, expandSource(t, "{{x|y}"))
}

func TestCount_UnmatchedOpenStaysLiteral(t *testing.T) {
	expander := NewExpander(nil)

	assert.Equal(t, 1, expander.Count(NewScanner("{Hello", nil).Scan()))
	assert.Equal(t, 2, expander.Count(NewScanner("{oops {a|b}", nil).Scan()))
}

func TestCount_MatchesExpansionLength(t *testing.T) {
	sources := []string{
		"",
		"plain",
		"{a|b}",
		"{a|b} {1|2|3}",
		"{A|B {1|2}}",
		"{a{b|c{d|e}}|f}",
		"{}",
		"a{}b",
		"{a|}",
		"{Hello",
		"x{y}z",
		"{a|a}",
		"{a|b}{c|d}{e|f}",
		"pre {one|two|three} mid {x|y} post",
	}
	expander := NewExpander(nil)
	for _, source := range sources {
		segments := NewScanner(source, nil).Scan()
		assert.Equal(t, len(expander.ExpandAll(segments)), expander.Count(segments), "source: %q", source)
	}
}

func TestCount_NestedSum(t *testing.T) {
	segments := NewScanner("{A|B {1|2}}", nil).Scan()

	assert.Equal(t, 3, NewExpander(nil).Count(segments))
}

func TestFirst_Truncates(t *testing.T) {
	expander := NewExpander(nil)
	segments := NewScanner("{A|B|C} {1|2|3}", nil).Scan()

	assert.Equal(t, []string{"A 1", "A 2", "A 3", "B 1", "B 2"}, expander.First(segments, 5))
}

func TestFirst_ClampsBounds(t *testing.T) {
	expander := NewExpander(nil)
	segments := NewScanner("{a|b}", nil).Scan()

	assert.Empty(t, expander.First(segments, -1))
	assert.Empty(t, expander.First(segments, 0))
	assert.Len(t, expander.First(segments, 99), 2)
}
