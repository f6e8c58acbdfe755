package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Vanille-N/pestview/syntax"
	"github.com/Vanille-N/pestview/view"
)

// plainText renders files no registered language claims: no rules, every
// line keeps the Normal style.
var plainText = &syntax.Language{Name: "text"}

var statusBarStyle = tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)

func main() {
	dump := flag.Bool("d", false, "print highlighted source to stdout instead of opening the viewer")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: pestview [-d] file.pest ...")
		os.Exit(1)
	}

	syntax.Register(syntax.Pest)

	if *dump {
		if err := dumpFiles(os.Stdout, flag.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "pestview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	views := make([]*view.TextView, 0, flag.NArg())
	for _, path := range flag.Args() {
		contents, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pestview: %v\n", err)
			os.Exit(1)
		}
		lang := syntax.ForFile(path)
		if lang == nil {
			lang = plainText
		}
		views = append(views, view.NewTextView(path, contents, lang, &syntax.DefaultColorscheme))
	}

	s, e := tcell.NewScreen()
	if e != nil {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}
	if e := s.Init(); e != nil {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}
	defer s.Fini() // Useful for handling panics

	ClipInitialize() // Yanking degrades gracefully without a clipboard

	sizex, sizey := s.Size()
	layout := func() {
		for _, v := range views {
			v.SetPos(0, 0)
			v.SetSize(sizex, sizey-1) // Bottom row is the status bar
		}
	}
	layout()

	cur := 0
	status := ""

main_loop:
	for {
		s.Clear()
		views[cur].Draw(s)
		drawStatusBar(s, views[cur], cur, len(views), sizex, sizey-1, status)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			sizex, sizey = s.Size()
			layout()
			s.Sync() // Redraw everything
		case *tcell.EventKey:
			status = ""
			switch {
			case ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyEscape:
				break main_loop
			case ev.Key() == tcell.KeyTab:
				cur = (cur + 1) % len(views)
			case ev.Key() == tcell.KeyBacktab:
				cur = (cur + len(views) - 1) % len(views)
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'y':
				if err := ClipWrite(views[cur].CurrentLineText()); err != nil {
					status = err.Error()
				} else {
					status = fmt.Sprintf("yanked line %d", views[cur].CurrentLine()+1)
				}
			default:
				views[cur].HandleEvent(ev)
			}
		}
	}
}

// drawStatusBar reports the file, the active highlighting scheme, and the
// position, on the bottom row.
func drawStatusBar(s tcell.Screen, v *view.TextView, idx, count, width, y int, status string) {
	for col := 0; col < width; col++ {
		s.SetContent(col, y, ' ', nil, statusBarStyle)
	}

	left := fmt.Sprintf(" %s  [%s]", v.FilePath, v.LanguageName())
	if count > 1 {
		left += fmt.Sprintf("  (%d of %d)", idx+1, count)
	}
	if status != "" {
		left += "  -- " + status
	}
	drawText(s, 0, y, width, left)

	right := fmt.Sprintf("%d/%d ", v.CurrentLine()+1, v.Buffer.Lines())
	drawText(s, width-len(right), y, width, right)
}

func drawText(s tcell.Screen, x, y, width int, text string) {
	for _, r := range text {
		if x < 0 || x >= width {
			break
		}
		s.SetContent(x, y, r, nil, statusBarStyle)
		x++
	}
}
