package buffer

// A Buffer is a read-only view over text storage, indexed by line and column
// the way a text display wants to consume it. All lines and columns start at
// zero, and all "end" ranges are inclusive. The viewer never mutates its
// documents, so no editing operations are part of the contract.
//
// Any bounds out of range are panics! If you are unsure your position or range
// may be out of bounds, use ClampLineCol() or compare with Lines().
type Buffer interface {
	// Line returns a slice of the data at the given line, including the ending
	// line delimiter. line starts from zero. Data returned may or may not be a
	// copy: do not write to it.
	Line(line int) []byte

	// Slice returns a slice of the buffer from startLine, startCol, to endLine,
	// endCol, inclusive bounds. The returned value may or may not be a copy of
	// the data, so do not write to it.
	Slice(startLine, startCol, endLine, endCol int) []byte

	// Bytes returns all of the bytes in the buffer. This function is very likely
	// to copy all of the data in the buffer. Use sparingly.
	Bytes() []byte

	// Len returns the number of bytes in the buffer.
	Len() int

	// Lines returns the number of lines in the buffer. If the buffer is empty,
	// 1 is returned, because there is always at least one line. This function
	// basically counts the number of newline ('\n') characters in a buffer.
	Lines() int

	// RunesInLineWithDelim returns the number of runes in the given line,
	// including the line delimiter in the count. If that line delimiter is
	// CRLF ('\r\n'), then it adds two.
	RunesInLineWithDelim(line int) int

	// RunesInLine returns the number of runes in the given line, excluding
	// line delimiters.
	RunesInLine(line int) int

	// ClampLineCol is a utility function to clamp any provided line and col to
	// only possible values within the buffer, pointing to runes. It first
	// clamps the line, then clamps the column. The column is clamped between
	// zero and the last rune before the line delimiter.
	ClampLineCol(line, col int) (int, int)

	// LineColToPos returns the index of the byte at line, col. If line is less
	// than zero, or more than the number of available lines, the function will
	// panic. If col is less than zero, the function will panic. If col is
	// greater than the length of the line, the position of the last byte of
	// the line is returned, instead.
	LineColToPos(line, col int) int

	// PosToLineCol converts a byte offset (position) of the buffer's bytes
	// into a line and column. Position will be clamped.
	PosToLineCol(pos int) (int, int)
}
