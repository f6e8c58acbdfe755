package main

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/Vanille-N/pestview/buffer"
	"github.com/Vanille-N/pestview/syntax"
)

// groupColors carries the DefaultColorscheme's choices over to plain ANSI
// output for the -d mode.
var groupColors = map[syntax.Group]*color.Color{
	syntax.GroupString:    color.New(color.FgYellow),
	syntax.GroupOperator:  color.New(color.FgBlue),
	syntax.GroupComment:   color.New(color.FgHiBlack),
	syntax.GroupType:      color.New(color.FgMagenta),
	syntax.GroupStatement: color.New(color.FgHiBlue),
	syntax.GroupTodo:      color.New(color.FgHiYellow, color.Bold),
	syntax.GroupSpecial:   color.New(color.FgHiMagenta),
}

// dumpFiles prints each file to w with ANSI highlighting, one after the
// other. Files with no registered language pass through unstyled.
func dumpFiles(w io.Writer, paths []string) error {
	out := bufio.NewWriter(w)
	defer out.Flush()

	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		lang := syntax.ForFile(path)
		if lang == nil {
			out.Write(contents)
			continue
		}
		dumpBuffer(out, buffer.NewRopeBuffer(contents), lang)
	}
	return nil
}

func dumpBuffer(w io.Writer, buf buffer.Buffer, lang *syntax.Language) {
	h := syntax.NewHighlighter(buf, lang, &syntax.DefaultColorscheme)
	lines := buf.Lines()
	h.UpdateLines(0, lines-1)

	for i := 0; i < lines; i++ {
		if i == lines-1 && buf.RunesInLineWithDelim(i) == 0 {
			break // A trailing delimiter leaves an empty final line behind
		}
		data := bytes.TrimRight(buf.Line(i), "\r\n")
		cur := 0
		for _, m := range h.GetLineMatches(i) {
			if m.Start > cur {
				w.Write(data[cur:m.Start])
			}
			if c := groupColors[lang.Links[m.Kind]]; c != nil {
				c.Fprint(w, string(data[m.Start:m.End]))
			} else {
				w.Write(data[m.Start:m.End])
			}
			cur = m.End
		}
		if cur < len(data) {
			w.Write(data[cur:])
		}
		io.WriteString(w, "\n")
	}
}
