package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dmoose/multimacs/internal/engine/buffer"
	"github.com/dmoose/multimacs/internal/engine/cursor"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

var (
	styleDefault   = tcell.StyleDefault
	styleRegion    = tcell.StyleDefault.Reverse(true)
	styleSecondary = tcell.StyleDefault.Reverse(true).Underline(true)
	styleModeline  = tcell.StyleDefault.Reverse(true)
)

type span struct {
	start, end rope.CharOffset
}

// draw renders the current buffer into the text rows, the modeline on
// the second to last row, and the echo area on the last row.
func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if w <= 0 || h < 3 {
		a.screen.Show()
		return
	}
	textRows := h - 2

	b := a.state.Current()
	text := b.Text()
	set := b.Cursors()
	primary := set.Primary

	pt := text.CharToPoint(primary.Position)
	a.scrollTo(pt.Line, textRows)

	regions := activeRegions(b)
	secondary := make(map[rope.CharOffset]bool, len(set.Secondary))
	for _, c := range set.Secondary {
		secondary[c.Position] = true
	}

	lineCount := text.LineCount()
	var primaryCells []Cell
	for row := 0; row < textRows; row++ {
		line := a.top + row
		if line >= lineCount {
			break
		}
		lineStart := text.LineStartChar(line)
		lineEnd := text.LineEndChar(line)
		cells := LayoutLine(text.LineText(line), lineStart, a.tabWidth)
		if line == pt.Line {
			primaryCells = cells
		}

		for _, c := range cells {
			if c.Col >= w {
				break
			}
			style := styleDefault
			if inSpan(regions, c.Start) {
				style = styleRegion
			}
			if secondary[c.Start] {
				style = styleSecondary
			}
			if c.Runes == nil {
				// Tab padding. Only draw when styled; blank cells are
				// already blank.
				if style != styleDefault {
					for i := 0; i < c.Width && c.Col+i < w; i++ {
						a.screen.SetContent(c.Col+i, row, ' ', nil, style)
					}
				}
				continue
			}
			a.screen.SetContent(c.Col, row, c.Runes[0], c.Runes[1:], style)
		}

		// A cursor sitting at end of line has no cell; give it one.
		if secondary[lineEnd] {
			col := LineWidth(cells)
			if col < w {
				a.screen.SetContent(col, row, ' ', nil, styleSecondary)
			}
		}
	}

	a.drawModeline(b, pt, w, h-2)
	a.drawEcho(a.state.Message())

	col := ColumnFor(primaryCells, primary.Position)
	a.screen.ShowCursor(col, pt.Line-a.top)
	a.screen.Show()
}

// scrollTo keeps the primary cursor's line inside the text window.
func (a *App) scrollTo(line, textRows int) {
	if line < a.top {
		a.top = line
	}
	if line >= a.top+textRows {
		a.top = line - textRows + 1
	}
	if a.top < 0 {
		a.top = 0
	}
}

func (a *App) drawModeline(b *buffer.Buffer, pt rope.Point, w, row int) {
	mod := "-"
	if b.Modified() {
		mod = "*"
	}
	left := fmt.Sprintf(" %s %s  L%d C%d", mod, b.Name(), pt.Line+1, pt.Column)
	if n := b.Cursors().Count(); n > 1 {
		left += fmt.Sprintf("  [%d cursors]", n)
	}

	col := 0
	for _, r := range left {
		if col >= w {
			break
		}
		a.screen.SetContent(col, row, r, nil, styleModeline)
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, row, ' ', nil, styleModeline)
	}
}

func (a *App) drawEcho(msg string) {
	w, h := a.screen.Size()
	if h < 1 {
		return
	}
	row := h - 1
	col := 0
	for _, r := range msg {
		if col >= w {
			break
		}
		a.screen.SetContent(col, row, r, nil, styleDefault)
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, row, ' ', nil, styleDefault)
	}
}

// activeRegions collects the active region of every cursor, in no
// particular order.
func activeRegions(b *buffer.Buffer) []span {
	var spans []span
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		if start, end, ok := c.Region(); ok && start < end {
			spans = append(spans, span{start: start, end: end})
		}
	})
	return spans
}

func inSpan(spans []span, offset rope.CharOffset) bool {
	for _, s := range spans {
		if offset >= s.start && offset < s.end {
			return true
		}
	}
	return false
}
