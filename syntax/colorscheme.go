package syntax

import "github.com/gdamore/tcell/v2"

// A Colorscheme resolves display groups to concrete terminal styles.
type Colorscheme map[Group]tcell.Style

// GetStyle returns the tcell.Style for the given Group. If the group is not
// present, the Normal style is used instead, and if Normal is also missing,
// tcell.StyleDefault is returned.
func (c *Colorscheme) GetStyle(g Group) tcell.Style {
	if c != nil {
		if val, ok := (*c)[g]; ok {
			return val
		} else if g != GroupNormal {
			if val, ok := (*c)[GroupNormal]; ok {
				return val
			}
		}
	}

	return tcell.StyleDefault
}

// DefaultColorscheme uses only the first 16 colors present in most colored
// terminals.
var DefaultColorscheme = Colorscheme{
	GroupNormal:    tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	GroupColumn:    tcell.Style{}.Foreground(tcell.ColorDarkGray).Background(tcell.ColorBlack),
	GroupString:    tcell.Style{}.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
	GroupOperator:  tcell.Style{}.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack),
	GroupComment:   tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	GroupType:      tcell.Style{}.Foreground(tcell.ColorPurple).Background(tcell.ColorBlack),
	GroupStatement: tcell.Style{}.Foreground(tcell.ColorNavy).Background(tcell.ColorBlack),
	GroupTodo:      tcell.Style{}.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	GroupSpecial:   tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
}
