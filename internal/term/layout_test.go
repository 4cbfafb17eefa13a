package term

import (
	"testing"

	"github.com/dmoose/multimacs/internal/engine/rope"
)

func TestLayoutLineASCII(t *testing.T) {
	cells := LayoutLine("abc", 10, 4)
	if len(cells) != 3 {
		t.Fatalf("len(cells) = %d, want 3", len(cells))
	}
	for i, c := range cells {
		if c.Col != i || c.Width != 1 {
			t.Errorf("cell %d: col %d width %d, want col %d width 1", i, c.Col, c.Width, i)
		}
		if c.Start != rope.CharOffset(10+i) || c.End != rope.CharOffset(11+i) {
			t.Errorf("cell %d: offsets [%d,%d), want [%d,%d)", i, c.Start, c.End, 10+i, 11+i)
		}
	}
}

func TestLayoutLineTabs(t *testing.T) {
	// Tab at column 1 expands to the stop at column 4.
	cells := LayoutLine("a\tb", 0, 4)
	if len(cells) != 3 {
		t.Fatalf("len(cells) = %d, want 3", len(cells))
	}
	tab := cells[1]
	if tab.Runes != nil {
		t.Errorf("tab cell has runes %q, want nil", string(tab.Runes))
	}
	if tab.Col != 1 || tab.Width != 3 {
		t.Errorf("tab cell col %d width %d, want col 1 width 3", tab.Col, tab.Width)
	}
	if cells[2].Col != 4 {
		t.Errorf("post-tab col = %d, want 4", cells[2].Col)
	}

	// Tab exactly on a stop takes a full stop's width.
	cells = LayoutLine("\t", 0, 4)
	if cells[0].Width != 4 {
		t.Errorf("tab-at-stop width = %d, want 4", cells[0].Width)
	}
}

func TestLayoutLineWideRunes(t *testing.T) {
	cells := LayoutLine("a世b", 0, 8)
	if len(cells) != 3 {
		t.Fatalf("len(cells) = %d, want 3", len(cells))
	}
	if cells[1].Width != 2 {
		t.Errorf("wide cell width = %d, want 2", cells[1].Width)
	}
	if cells[2].Col != 3 {
		t.Errorf("col after wide rune = %d, want 3", cells[2].Col)
	}
}

func TestLayoutLineCombiningCluster(t *testing.T) {
	// "e" plus a combining acute is one grapheme cluster, two chars.
	cells := LayoutLine("éx", 0, 8)
	if len(cells) != 2 {
		t.Fatalf("len(cells) = %d, want 2", len(cells))
	}
	if cells[0].Start != 0 || cells[0].End != 2 {
		t.Errorf("cluster offsets [%d,%d), want [0,2)", cells[0].Start, cells[0].End)
	}
	if cells[1].Start != 2 {
		t.Errorf("next cell start = %d, want 2", cells[1].Start)
	}
}

func TestColumnFor(t *testing.T) {
	cells := LayoutLine("a\t世", 0, 4)

	tests := []struct {
		offset rope.CharOffset
		want   int
	}{
		{0, 0}, // a
		{1, 1}, // tab
		{2, 4}, // wide rune after tab stop
		{3, 6}, // past end of line
	}
	for _, tt := range tests {
		if got := ColumnFor(cells, tt.offset); got != tt.want {
			t.Errorf("ColumnFor(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}

	if got := ColumnFor(nil, 0); got != 0 {
		t.Errorf("ColumnFor on empty line = %d, want 0", got)
	}
}

func TestLineWidth(t *testing.T) {
	if got := LineWidth(LayoutLine("ab世", 0, 4)); got != 4 {
		t.Errorf("LineWidth = %d, want 4", got)
	}
	if got := LineWidth(nil); got != 0 {
		t.Errorf("LineWidth(nil) = %d, want 0", got)
	}
}
