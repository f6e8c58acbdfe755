package syntax

import (
	"testing"

	"github.com/Vanille-N/pestview/buffer"
)

// lineMatches highlights src with the pest definition and returns the
// matches of its first line.
func lineMatches(t *testing.T, src string) []Match {
	t.Helper()
	buf := buffer.NewRopeBuffer([]byte(src))
	h := NewHighlighter(buf, Pest, &DefaultColorscheme)
	h.UpdateLines(0, buf.Lines()-1)
	return h.GetLineMatches(0)
}

func TestPestWrapperBrace(t *testing.T) {
	matches := lineMatches(t, "_{")
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %v", matches)
	}
	if m := matches[0]; m.Kind != WrapperBrace || m.Start != 0 || m.End != 2 {
		t.Errorf("Expected WrapperBrace over the whole token, got %+v", m)
	}
}

func TestPestWrapperBracePrefixes(t *testing.T) {
	for _, src := range []string{"@{", "${", "{", "}"} {
		matches := lineMatches(t, src)
		if len(matches) != 1 || matches[0].Kind != WrapperBrace {
			t.Errorf("%q: expected a single WrapperBrace match, got %v", src, matches)
		}
		if matches[0].End-matches[0].Start != len(src) {
			t.Errorf("%q: expected the whole token matched, got %+v", src, matches[0])
		}
	}
}

func TestPestRange(t *testing.T) {
	matches := lineMatches(t, "'a'..'z'")
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %v", matches)
	}
	if m := matches[0]; m.Kind != Range || m.Start != 0 || m.End != 8 {
		t.Errorf("Expected the whole span to be a Range, got %+v", m)
	}
}

func TestPestPredefinedKeywords(t *testing.T) {
	for _, src := range []string{"ANY", "COMMENT", "WHITESPACE", "SOI", "EOI"} {
		matches := lineMatches(t, src)
		if len(matches) != 1 || matches[0].Kind != PredefinedKeyword {
			t.Errorf("%q: expected PredefinedKeyword, got %v", src, matches)
		}
	}

	// A name merely containing a predefined symbol is still a rule name.
	matches := lineMatches(t, "ANYTHING")
	if len(matches) != 1 || matches[0].Kind != RuleName {
		t.Errorf("ANYTHING: expected RuleName, got %v", matches)
	}
}

func TestPestRepeatCount(t *testing.T) {
	matches := lineMatches(t, "{2,4}")
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %v", matches)
	}
	if m := matches[0]; m.Kind != RepeatCount || m.Start != 0 || m.End != 5 {
		t.Errorf("Expected RepeatCount over {2,4}, got %+v", m)
	}
}

func TestPestComment(t *testing.T) {
	buf := buffer.NewRopeBuffer([]byte("// hello\nrule\n"))
	h := NewHighlighter(buf, Pest, &DefaultColorscheme)
	h.UpdateLines(0, 1)

	matches := h.GetLineMatches(0)
	if len(matches) != 1 || matches[0].Kind != Comment {
		t.Fatalf("Expected a single Comment match, got %v", matches)
	}
	if matches[0].Start != 0 || matches[0].End != 8 {
		t.Errorf("Expected the comment to run to end of line, got %+v", matches[0])
	}

	// The newline ends the comment; the next line starts fresh.
	next := h.GetLineMatches(1)
	if len(next) != 1 || next[0].Kind != RuleName {
		t.Errorf("Expected the next line to leave the comment state, got %v", next)
	}
}

func TestPestQuotedPatternEscape(t *testing.T) {
	matches := lineMatches(t, `"a\"b"`)
	want := []Match{
		{0, 2, QuotedPattern},
		{2, 4, Escape},
		{4, 6, QuotedPattern},
	}
	if len(matches) != len(want) {
		t.Fatalf("Expected %v, got %v", want, matches)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("Match %d: expected %+v, got %+v", i, want[i], matches[i])
		}
	}
}

func TestPestQuotedPatternTermination(t *testing.T) {
	// The escaped backslash must not hide the closing delimiter.
	matches := lineMatches(t, `"a\\" "b"`)
	if len(matches) < 2 {
		t.Fatalf("Expected two quoted regions, got %v", matches)
	}
	if matches[0].Kind != QuotedPattern || matches[0].Start != 0 {
		t.Fatalf("Expected a quoted region at 0, got %+v", matches[0])
	}
	var ends []int
	for _, m := range matches {
		if m.Kind == QuotedPattern || m.Kind == Escape {
			ends = append(ends, m.End)
		}
	}
	if ends[len(ends)-1] != 9 {
		t.Errorf("Expected the second region to close at 9, got %v", matches)
	}
	// First region closes at the first unescaped quote, position 4.
	closed := false
	for _, m := range matches {
		if m.End == 5 {
			closed = true
		}
	}
	if !closed {
		t.Errorf("Expected the first region to end at byte 5, got %v", matches)
	}
}

func TestPestUnterminatedQuoteRunsToEndOfLine(t *testing.T) {
	matches := lineMatches(t, `"abc`)
	if len(matches) != 1 || matches[0].Kind != QuotedPattern {
		t.Fatalf("Expected a single QuotedPattern match, got %v", matches)
	}
	if matches[0].End != 4 {
		t.Errorf("Expected the region to run to end of line, got %+v", matches[0])
	}
}

func TestPestNonMatchFallback(t *testing.T) {
	matches := lineMatches(t, ";")
	if len(matches) != 0 {
		t.Errorf("Expected no matches for %q, got %v", ";", matches)
	}

	// Same for '=': the DSL's assignment sign keeps the default style.
	matches = lineMatches(t, "=")
	if len(matches) != 0 {
		t.Errorf("Expected no matches for %q, got %v", "=", matches)
	}
}

func TestPestOperators(t *testing.T) {
	matches := lineMatches(t, "(a | b)+ ~ c?")
	var ops []string
	for _, m := range matches {
		if m.Kind == Operator {
			ops = append(ops, string([]byte("(a | b)+ ~ c?")[m.Start:m.End]))
		}
	}
	want := []string{"(", "|", ")", "+", "~", "?"}
	if len(ops) != len(want) {
		t.Fatalf("Expected operators %v, got %v", want, ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("Operator %d: expected %q, got %q", i, want[i], ops[i])
		}
	}
}

func TestPestFullRule(t *testing.T) {
	src := `WHITESPACE = _{ " " } // ignored`
	matches := lineMatches(t, src)

	var kinds []Kind
	for _, m := range matches {
		kinds = append(kinds, m.Kind)
	}
	want := []Kind{PredefinedKeyword, WrapperBrace, QuotedPattern, WrapperBrace, Comment}
	if len(kinds) != len(want) {
		t.Fatalf("Expected kinds %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Kind %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}

func TestPestCommentClaimsQuotes(t *testing.T) {
	src := `// not "a string"`
	matches := lineMatches(t, src)
	if len(matches) != 1 || matches[0].Kind != Comment {
		t.Fatalf("Expected the comment to cover the quotes, got %v", matches)
	}
	if matches[0].End != len(src) {
		t.Errorf("Expected the comment to span the line, got %+v", matches[0])
	}
}

func TestPestQuoteClaimsSlashes(t *testing.T) {
	src := `"//"`
	matches := lineMatches(t, src)
	if len(matches) != 1 || matches[0].Kind != QuotedPattern {
		t.Fatalf("Expected a quoted pattern, not a comment, got %v", matches)
	}
}
