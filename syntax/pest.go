package syntax

import "regexp"

// Pest is the highlighting definition for pest grammar files.
//
// Nine rules cover the whole DSL: rule names, the silent/atomic/compound
// wrapper braces (_{ @{ ${), PEG combinators, character ranges, bounded
// repetitions, double-quoted patterns with their escapes, the predefined
// grammar symbols, and line comments. Anything else keeps the default
// style; a non-match is not an error.
var Pest = &Language{
	Name:      "pest",
	Filetypes: []string{".pest"},
	Rules: []Rule{
		{Kind: WrapperBrace, Start: regexp.MustCompile(`[_$@]?[{}]`)},
		{Kind: Range, Start: regexp.MustCompile(`'(?:\\.|[^'\\])'\.\.'(?:\\.|[^'\\])'`)},
		{Kind: Operator, Start: regexp.MustCompile(`[()+*?!|~]`)},
		{Kind: RuleName, Start: regexp.MustCompile(`[A-Za-z_]+`)},
		{Kind: RepeatCount, Start: regexp.MustCompile(`\{[0-9,]+\}`)},
		{Kind: Escape, Start: regexp.MustCompile(`\\.`), Contained: true},
		{
			Kind:     QuotedPattern,
			Start:    regexp.MustCompile(`"`),
			End:      regexp.MustCompile(`"`),
			Skip:     regexp.MustCompile(`\\\\|\\"`),
			Specials: []Kind{Escape},
		},
		{Kind: PredefinedKeyword, Start: regexp.MustCompile(`\b(?:ANY|COMMENT|WHITESPACE|SOI|EOI)\b`)},
		{Kind: Comment, Start: regexp.MustCompile(`//.*`)},
	},
	Links: map[Kind]Group{
		Escape:            GroupSpecial,
		QuotedPattern:     GroupString,
		Range:             GroupString,
		Operator:          GroupType,
		RuleName:          GroupOperator,
		WrapperBrace:      GroupStatement,
		PredefinedKeyword: GroupTodo,
		RepeatCount:       GroupType,
		Comment:           GroupComment,
	},
}
