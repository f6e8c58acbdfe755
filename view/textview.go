package view

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Vanille-N/pestview/buffer"
	"github.com/Vanille-N/pestview/syntax"
)

// TextView is a read-only, scrolling view over a highlighted buffer. It
// tracks a current line (the yank target) and renders a line-number column,
// expanding tabs and respecting wide runes.
type TextView struct {
	Buffer      buffer.Buffer
	Highlighter *syntax.Highlighter
	LineNumbers bool
	TabSize     int
	FilePath    string

	x, y             int
	width, height    int
	scrollx, scrolly int
	curLine          int
}

func NewTextView(filePath string, contents []byte, lang *syntax.Language, colorscheme *syntax.Colorscheme) *TextView {
	buf := buffer.NewRopeBuffer(contents)
	return &TextView{
		Buffer:      buf,
		Highlighter: syntax.NewHighlighter(buf, lang, colorscheme),
		LineNumbers: true,
		TabSize:     4,
		FilePath:    filePath,
	}
}

func (v *TextView) SetPos(x, y int) {
	v.x, v.y = x, y
}

func (v *TextView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.followCurrentLine()
}

// LanguageName reports which highlighting scheme the view renders with.
func (v *TextView) LanguageName() string {
	return v.Highlighter.Language.Name
}

// CurrentLine returns the zero-based line the view considers current.
func (v *TextView) CurrentLine() int {
	return v.curLine
}

// CurrentLineText returns the current line without its delimiter.
func (v *TextView) CurrentLineText() string {
	return string(bytes.TrimRight(v.Buffer.Line(v.curLine), "\r\n"))
}

// columnWidth is how many cells the line-number column occupies, including
// its padding. Zero when line numbers are off.
func (v *TextView) columnWidth() int {
	if !v.LineNumbers {
		return 0
	}
	return len(strconv.Itoa(v.Buffer.Lines())) + 2
}

func (v *TextView) Draw(s tcell.Screen) {
	columnWidth := v.columnWidth()
	textWidth := v.width - columnWidth

	v.Highlighter.UpdateInvalidatedLines(v.scrolly, v.scrolly+v.height-1)

	normalStyle := v.Highlighter.Colorscheme.GetStyle(syntax.GroupNormal)
	columnStyle := v.Highlighter.Colorscheme.GetStyle(syntax.GroupColumn)

	for row := 0; row < v.height; row++ {
		for col := 0; col < v.width; col++ {
			s.SetContent(v.x+col, v.y+row, ' ', nil, normalStyle)
		}

		line := v.scrolly + row
		if line >= v.Buffer.Lines() {
			continue
		}

		if v.LineNumbers {
			numStyle := columnStyle
			if line == v.curLine {
				numStyle = normalStyle // The current line's number stands out
			}
			num := strconv.Itoa(line + 1)
			x := v.x + columnWidth - 1 - len(num) // Right-aligned, one cell of padding
			for i, r := range num {
				s.SetContent(x+i, v.y+row, r, nil, numStyle)
			}
		}

		v.drawLine(s, row, line, columnWidth, textWidth, normalStyle)
	}
}

// drawLine renders one buffer line at the given view row, switching styles
// at the highlighter's match boundaries.
func (v *TextView) drawLine(s tcell.Screen, row, line, columnWidth, textWidth int, normalStyle tcell.Style) {
	data := bytes.TrimRight(v.Buffer.Line(line), "\r\n")
	matches := v.Highlighter.GetLineMatches(line)

	mi := 0
	col := 0 // Visual column, before applying horizontal scroll
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])

		for mi < len(matches) && i >= matches[mi].End {
			mi++
		}
		style := normalStyle
		if mi < len(matches) && i >= matches[mi].Start {
			style = v.Highlighter.GetStyle(matches[mi])
		}

		if r == '\t' {
			next := (col/v.TabSize + 1) * v.TabSize
			for ; col < next; col++ {
				if sc := col - v.scrollx; sc >= 0 && sc < textWidth {
					s.SetContent(v.x+columnWidth+sc, v.y+row, ' ', nil, style)
				}
			}
		} else {
			w := runewidth.RuneWidth(r)
			if sc := col - v.scrollx; sc >= 0 && sc+w <= textWidth {
				s.SetContent(v.x+columnWidth+sc, v.y+row, r, nil, style)
			}
			col += w
		}
		i += size
	}
}

// HandleEvent moves the current line and scroll in response to a key event.
// Returns false when the key means nothing to the view.
func (v *TextView) HandleEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		v.moveLine(-1)
	case tcell.KeyDown:
		v.moveLine(1)
	case tcell.KeyPgUp:
		v.moveLine(-v.height)
	case tcell.KeyPgDn:
		v.moveLine(v.height)
	case tcell.KeyHome:
		v.curLine = 0
		v.scrollx = 0
	case tcell.KeyEnd:
		v.curLine = v.Buffer.Lines() - 1
	case tcell.KeyLeft:
		if v.scrollx > 0 {
			v.scrollx--
		}
		return true
	case tcell.KeyRight:
		v.scrollx++
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			v.moveLine(-1)
		case 'j':
			v.moveLine(1)
		case 'g':
			v.curLine = 0
			v.scrollx = 0
		case 'G':
			v.curLine = v.Buffer.Lines() - 1
		default:
			return false
		}
	default:
		return false
	}
	v.followCurrentLine()
	return true
}

func (v *TextView) moveLine(delta int) {
	v.curLine, _ = v.Buffer.ClampLineCol(v.curLine+delta, 0)
}

// followCurrentLine adjusts the vertical scroll so the current line stays
// visible.
func (v *TextView) followCurrentLine() {
	if v.height <= 0 {
		return
	}
	if v.curLine < v.scrolly {
		v.scrolly = v.curLine
	} else if v.curLine >= v.scrolly+v.height {
		v.scrolly = v.curLine - v.height + 1
	}
}
