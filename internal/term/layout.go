package term

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dmoose/multimacs/internal/engine/rope"
)

// Cell is one drawable unit of a laid-out line: a grapheme cluster (or
// a tab's worth of padding) at a screen column, tagged with the char
// offset range it came from so cursor and region painting can match
// buffer positions to screen positions.
type Cell struct {
	Runes []rune // cluster runes; nil for tab padding
	Col   int    // screen column
	Width int
	Start rope.CharOffset // char offset of the cluster start
	End   rope.CharOffset // char offset just past the cluster
}

// LayoutLine flattens one line of text (without its newline) into
// screen cells. lineStart is the char offset of the line's first
// character; tabs expand to the next tab stop.
func LayoutLine(line string, lineStart rope.CharOffset, tabWidth int) []Cell {
	if tabWidth < 1 {
		tabWidth = 8
	}

	var cells []Cell
	col := 0
	offset := lineStart

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		runes := g.Runes()
		chars := rope.CharOffset(len(runes))

		if len(runes) == 1 && runes[0] == '\t' {
			width := tabWidth - col%tabWidth
			cells = append(cells, Cell{
				Runes: nil,
				Col:   col,
				Width: width,
				Start: offset,
				End:   offset + 1,
			})
			col += width
			offset++
			continue
		}

		width := runewidth.StringWidth(g.Str())
		if width < 1 {
			// Combining marks travel with their base cluster; a lone
			// zero-width cluster still needs a cell to land on.
			width = 1
		}
		cells = append(cells, Cell{
			Runes: runes,
			Col:   col,
			Width: width,
			Start: offset,
			End:   offset + chars,
		})
		col += width
		offset += chars
	}
	return cells
}

// ColumnFor returns the screen column of the given char offset within
// a laid-out line. An offset past the last cell lands after it.
func ColumnFor(cells []Cell, offset rope.CharOffset) int {
	for _, c := range cells {
		if offset < c.End {
			return c.Col
		}
	}
	if n := len(cells); n > 0 {
		return cells[n-1].Col + cells[n-1].Width
	}
	return 0
}

// LineWidth returns the total screen width of a laid-out line.
func LineWidth(cells []Cell) int {
	if n := len(cells); n > 0 {
		return cells[n-1].Col + cells[n-1].Width
	}
	return 0
}
