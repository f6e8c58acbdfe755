package buffer

import (
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

// RopeBuffer is a Buffer backed by an immutable rope, so slicing lines out
// of large grammar files stays cheap.
type RopeBuffer rope.Node

func NewRopeBuffer(contents []byte) *RopeBuffer {
	return (*RopeBuffer)(rope.New(contents))
}

func (b *RopeBuffer) node() *rope.Node {
	return (*rope.Node)(b)
}

// suffix returns the rope contents from pos to the end of the buffer.
func (b *RopeBuffer) suffix(pos int) *rope.Node {
	_, r := b.node().SplitAt(pos)
	l, _ := r.SplitAt(b.node().Len() - pos)
	return l
}

// lineStart returns the first byte index of the given line (starting from
// zero). The returned index can be equal to the length of the buffer, not
// pointing to any byte, which means the line is the last, and empty, line of
// the buffer. If line is greater than or equal to the number of lines in the
// buffer, a panic is issued.
func (b *RopeBuffer) lineStart(line int) int {
	var pos int
	if line > 0 {
		b.node().IndexAllFunc(0, b.node().Len(), []byte{'\n'}, func(idx int) bool {
			line--
			pos = idx + 1 // Byte after the delimiter starts the next line
			return line <= 0
		})
	}
	if line > 0 {
		panic("lineStart: not enough lines in buffer to reach position")
	}
	return pos
}

// lineRunes returns the rune count of the line starting at byte pos,
// excluding the delimiter, along with the rune width of the delimiter
// itself: 0 on the final line, 1 for LF, 2 for CRLF.
func (b *RopeBuffer) lineRunes(pos int) (content, delim int) {
	pending := 0 // Carriage returns not yet known to be content or delimiter
	b.suffix(pos).EachLeaf(func(n *rope.Node) bool {
		data := n.Value() // Reference; not a copy.
		for i := 0; i < len(data); {
			r, size := utf8.DecodeRune(data[i:])
			switch r {
			case '\r':
				pending++
			case '\n':
				if pending > 0 {
					content += pending - 1
					delim = 2
				} else {
					delim = 1
				}
				return true
			default:
				content += pending
				pending = 0
				content++
			}
			i += size
		}
		return false
	})
	if delim == 0 {
		content += pending // Trailing '\r' on the last line is content
	}
	return content, delim
}

// Line returns a slice of the data at the given line, including the ending
// line delimiter. line starts from zero. Data returned may or may not be a
// copy: do not write to it.
func (b *RopeBuffer) Line(line int) []byte {
	pos := b.lineStart(line)
	var bytes int
	b.suffix(pos).EachLeaf(func(n *rope.Node) bool {
		data := n.Value() // Reference; not a copy.
		for i := 0; i < len(data); {
			_, size := utf8.DecodeRune(data[i:])
			bytes += size
			if data[i] == '\n' {
				return true
			}
			i += size
		}
		return false
	})
	return b.node().Slice(pos, pos+bytes)
}

// Slice returns a slice of the buffer from startLine, startCol, to endLine,
// endCol, inclusive bounds. The returned value may or may not be a copy of
// the data, so do not write to it.
func (b *RopeBuffer) Slice(startLine, startCol, endLine, endCol int) []byte {
	endPos := b.LineColToPos(endLine, endCol) + 1
	if length := b.node().Len(); endPos >= length {
		endPos = length - 1
	}
	return b.node().Slice(b.LineColToPos(startLine, startCol), endPos)
}

// Bytes returns all of the bytes in the buffer. This function is very likely
// to copy all of the data in the buffer. Use sparingly.
func (b *RopeBuffer) Bytes() []byte {
	return b.node().Value()
}

// Len returns the number of bytes in the buffer.
func (b *RopeBuffer) Len() int {
	return b.node().Len()
}

// Lines returns the number of lines in the buffer. If the buffer is empty,
// 1 is returned, because there is always at least one line.
func (b *RopeBuffer) Lines() int {
	return b.node().Count(0, b.node().Len(), []byte{'\n'}) + 1
}

// RunesInLineWithDelim returns the number of runes in the given line,
// including the line delimiter: one rune for LF, two for CRLF.
func (b *RopeBuffer) RunesInLineWithDelim(line int) int {
	pos := b.lineStart(line)
	if pos >= b.node().Len() {
		return 0
	}
	content, delim := b.lineRunes(pos)
	return content + delim
}

// RunesInLine returns the number of runes in the given line, excluding line
// delimiters.
func (b *RopeBuffer) RunesInLine(line int) int {
	pos := b.lineStart(line)
	if pos >= b.node().Len() {
		return 0
	}
	content, _ := b.lineRunes(pos)
	return content
}

// ClampLineCol clamps any provided line and col to only possible values
// within the buffer, pointing to runes. It first clamps the line, then
// clamps the column. The column is clamped between zero and the last rune
// before the line delimiter.
func (b *RopeBuffer) ClampLineCol(line, col int) (int, int) {
	if line < 0 {
		line = 0
	} else if lines := b.Lines() - 1; line > lines {
		line = lines
	}

	if col < 0 {
		col = 0
	} else if runes := b.RunesInLine(line); col > runes {
		col = runes
	}

	return line, col
}

// LineColToPos returns the index of the byte at line, col. If col is greater
// than the length of the line, the position of the last byte of the line is
// returned, instead.
func (b *RopeBuffer) LineColToPos(line, col int) int {
	pos := b.lineStart(line)
	if col <= 0 {
		return pos
	}
	b.suffix(pos).EachLeaf(func(n *rope.Node) bool {
		data := n.Value() // Reference; not a copy.
		for i := 0; i < len(data); {
			if col == 0 || data[i] == '\n' {
				return true
			}
			_, size := utf8.DecodeRune(data[i:])
			pos += size
			col--
			i += size
		}
		return false
	})
	return pos
}

// PosToLineCol converts a byte offset (position) of the buffer's bytes into
// a line and column. Position will be clamped.
func (b *RopeBuffer) PosToLineCol(pos int) (int, int) {
	var line, col int
	if pos <= 0 {
		return line, col
	}
	b.node().EachLeaf(func(n *rope.Node) bool {
		data := n.Value() // Reference; not a copy.
		for i := 0; i < len(data); {
			_, size := utf8.DecodeRune(data[i:])
			pos -= size
			if pos < 0 {
				return true
			}
			if data[i] == '\n' {
				line, col = line+1, 0
			} else {
				col++
			}
			i += size
		}
		return false
	})
	return line, col
}
