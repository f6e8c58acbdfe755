package syntax

import "regexp"

// Kind is the lexical category a rule assigns to matched text.
type Kind uint8

const (
	Default Kind = iota
	WrapperBrace
	Range
	Operator
	RuleName
	RepeatCount
	Escape
	QuotedPattern
	PredefinedKeyword
	Comment
)

func (k Kind) String() string {
	switch k {
	case WrapperBrace:
		return "WrapperBrace"
	case Range:
		return "Range"
	case Operator:
		return "Operator"
	case RuleName:
		return "RuleName"
	case RepeatCount:
		return "RepeatCount"
	case Escape:
		return "Escape"
	case QuotedPattern:
		return "QuotedPattern"
	case PredefinedKeyword:
		return "PredefinedKeyword"
	case Comment:
		return "Comment"
	}
	return "Default"
}

// Group names a display slot in a Colorscheme. Every Kind a language uses
// links to exactly one Group; the colorscheme decides what the group looks
// like on screen.
type Group string

const (
	GroupNormal    Group = "Normal"
	GroupColumn    Group = "Column" // Line-number column, not linkable from rules
	GroupString    Group = "String"
	GroupOperator  Group = "Operator"
	GroupComment   Group = "Comment"
	GroupType      Group = "Type"
	GroupStatement Group = "Statement"
	GroupTodo      Group = "Todo"
	GroupSpecial   Group = "Special"
)

// A Rule matches one lexical category of a Language.
//
// With only Start set, every match of Start is a span of the rule's Kind.
// With End set, the rule is a delimited region: a span runs from a Start
// match to the first following End match, jumping over any Skip matches
// (escaped delimiters), or to the end of the line when no End is found.
// Specials name contained kinds whose rules are re-matched inside each
// region span, splitting it.
//
// A Contained rule never matches at the top level; it only applies inside
// regions that list its Kind in Specials.
type Rule struct {
	Kind      Kind
	Start     *regexp.Regexp
	End       *regexp.Regexp
	Skip      *regexp.Regexp
	Specials  []Kind
	Contained bool
}

// A Language is a highlighting definition: an ordered rule table plus the
// link table deciding which display group each lexical kind renders as.
// Rule order is significant, it breaks ties between overlapping matches
// (see Highlighter).
type Language struct {
	Name      string
	Filetypes []string // .pest, etc.
	Rules     []Rule
	Links     map[Kind]Group
}

// rule returns the rule for a contained kind, or nil.
func (l *Language) rule(k Kind) *Rule {
	for i := range l.Rules {
		if l.Rules[i].Kind == k {
			return &l.Rules[i]
		}
	}
	return nil
}
