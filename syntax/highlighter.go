package syntax

import (
	"sort"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/Vanille-N/pestview/buffer"
)

// A Match is one styled span within a line. Start and End are byte offsets
// into the line, End exclusive. Matches delivered by GetLineMatches are
// sorted by Start and never overlap; text between matches renders with the
// Normal style.
type Match struct {
	Start int
	End   int
	Kind  Kind
}

// A Highlighter can answer how to color any line of a provided Buffer. It
// applies the language's rules line by line and caches the results, so the
// caller only pays for the lines it draws. Lines are recomputed after being
// invalidated.
type Highlighter struct {
	Buffer      buffer.Buffer
	Language    *Language
	Colorscheme *Colorscheme

	lineMatches [][]Match
}

func NewHighlighter(buf buffer.Buffer, lang *Language, colorscheme *Colorscheme) *Highlighter {
	return &Highlighter{
		buf,
		lang,
		colorscheme,
		make([][]Match, buf.Lines()),
	}
}

// UpdateLines forces the highlighting matches for lines between startLine
// and endLine, inclusively, to be updated. It is more efficient to mark
// lines as invalidated when changes occur and call UpdateInvalidatedLines.
func (h *Highlighter) UpdateLines(startLine, endLine int) {
	if lines := h.Buffer.Lines(); len(h.lineMatches) < lines {
		h.lineMatches = append(h.lineMatches, make([][]Match, lines-len(h.lineMatches))...)
	}
	for i := startLine; i <= endLine && i < len(h.lineMatches); i++ {
		h.lineMatches[i] = h.matchLine(trimDelim(h.Buffer.Line(i)))
	}
}

// UpdateInvalidatedLines only updates the highlighting for lines that are
// invalidated between lines startLine and endLine, inclusively.
func (h *Highlighter) UpdateInvalidatedLines(startLine, endLine int) {
	// Move startLine to first line with invalidated changes
	for startLine <= endLine && startLine < len(h.lineMatches) {
		if h.lineMatches[startLine] == nil {
			break
		}
		startLine++
	}

	// Move endLine back to last line at or before endLine with invalidated changes
	for endLine >= startLine && endLine > 0 {
		if endLine < len(h.lineMatches) && h.lineMatches[endLine] == nil {
			break
		}
		endLine--
	}

	if startLine > endLine {
		return // Do nothing; no invalidated lines
	}

	h.UpdateLines(startLine, endLine)
}

func (h *Highlighter) HasInvalidatedLines(startLine, endLine int) bool {
	for i := startLine; i <= endLine && i < len(h.lineMatches); i++ {
		if h.lineMatches[i] == nil {
			return true
		}
	}
	return false
}

func (h *Highlighter) InvalidateLines(startLine, endLine int) {
	for i := startLine; i <= endLine && i < len(h.lineMatches); i++ {
		h.lineMatches[i] = nil
	}
}

// GetLineMatches returns the cached matches for the line, sorted by Start
// and non-overlapping. Returns nil for out-of-range or invalidated lines.
func (h *Highlighter) GetLineMatches(line int) []Match {
	if line < 0 || line >= len(h.lineMatches) {
		return nil
	}
	return h.lineMatches[line]
}

// GetStyle resolves a match to a terminal style through the language's link
// table and the colorscheme.
func (h *Highlighter) GetStyle(match Match) tcell.Style {
	if group, ok := h.Language.Links[match.Kind]; ok {
		return h.Colorscheme.GetStyle(group)
	}
	return h.Colorscheme.GetStyle(GroupNormal)
}

// matchLine computes the styled spans of a single line, without its
// delimiter. The result is never nil: a line with no matches at all caches
// an empty slice, which also marks the line as validated.
func (h *Highlighter) matchLine(data []byte) []Match {
	type span struct {
		start, end int
		rule       int
	}

	var spans []span
	for ri := range h.Language.Rules {
		rule := &h.Language.Rules[ri]
		if rule.Contained {
			continue
		}
		for _, s := range ruleSpans(rule, data) {
			spans = append(spans, span{s[0], s[1], ri})
		}
	}

	matches := make([]Match, 0, len(spans))
	if len(spans) == 0 {
		return matches
	}

	// Overlap policy: the earliest starting span wins; at the same start the
	// longest span wins; among identical spans the later declared rule
	// shadows the earlier one. This is what lets RepeatCount take "{2,4}"
	// away from WrapperBrace's lone "{", and PredefinedKeyword take "ANY"
	// away from RuleName.
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		if spans[i].end != spans[j].end {
			return spans[i].end > spans[j].end
		}
		return spans[i].rule > spans[j].rule
	})

	claimed := 0
	for _, s := range spans {
		if s.start < claimed || s.start >= s.end {
			continue
		}
		matches = append(matches, h.splitRegion(&h.Language.Rules[s.rule], data, s.start, s.end)...)
		claimed = s.end
	}
	return matches
}

// ruleSpans finds every span of the rule in the line. Plain rules are the
// Start matches themselves. Region rules run from each Start match to the
// first End match that is not jumped over by Skip, or to the end of the
// line when the region is unterminated.
func ruleSpans(rule *Rule, data []byte) [][2]int {
	if rule.End == nil {
		var spans [][2]int
		for _, loc := range rule.Start.FindAllIndex(data, -1) {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
		return spans
	}

	var spans [][2]int
	pos := 0
	for pos < len(data) {
		loc := rule.Start.FindIndex(data[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		i := pos + loc[1]
		end := len(data)
		for i < len(data) {
			if rule.Skip != nil {
				if sk := rule.Skip.FindIndex(data[i:]); sk != nil && sk[0] == 0 {
					i += sk[1]
					continue
				}
			}
			if e := rule.End.FindIndex(data[i:]); e != nil && e[0] == 0 {
				end = i + e[1]
				break
			}
			_, size := utf8.DecodeRune(data[i:])
			i += size
		}
		spans = append(spans, [2]int{start, end})
		if end <= start {
			break
		}
		pos = end
	}
	return spans
}

// splitRegion turns a claimed span into matches. A region listing Specials
// has its contained rules re-applied to the span's interior; each special
// match splits the surrounding region.
func (h *Highlighter) splitRegion(rule *Rule, data []byte, start, end int) []Match {
	if len(rule.Specials) == 0 {
		return []Match{{start, end, rule.Kind}}
	}

	var inner []Match
	for _, kind := range rule.Specials {
		contained := h.Language.rule(kind)
		if contained == nil {
			continue
		}
		for _, loc := range contained.Start.FindAllIndex(data[start:end], -1) {
			inner = append(inner, Match{start + loc[0], start + loc[1], kind})
		}
	}
	if len(inner) == 0 {
		return []Match{{start, end, rule.Kind}}
	}
	sort.Slice(inner, func(i, j int) bool { return inner[i].Start < inner[j].Start })

	out := make([]Match, 0, 2*len(inner)+1)
	cur := start
	for _, m := range inner {
		if m.Start > cur {
			out = append(out, Match{cur, m.Start, rule.Kind})
		}
		out = append(out, m)
		cur = m.End
	}
	if cur < end {
		out = append(out, Match{cur, end, rule.Kind})
	}
	return out
}

// trimDelim strips the trailing LF or CRLF so rules never match into the
// line delimiter.
func trimDelim(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
