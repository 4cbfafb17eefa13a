package buffer

import (
	"errors"
	"testing"

	"github.com/dmoose/multimacs/internal/engine/history"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

func cursorPositions(b *Buffer) []rope.CharOffset {
	all := b.Cursors().All()
	out := make([]rope.CharOffset, len(all))
	for i, c := range all {
		out[i] = c.Position
	}
	return out
}

func wantPositions(t *testing.T, b *Buffer, want ...rope.CharOffset) {
	t.Helper()
	got := cursorPositions(b)
	if len(got) != len(want) {
		t.Fatalf("cursor count = %d (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cursors = %v, want %v", got, want)
		}
	}
}

func TestInsertSingleCursor(t *testing.T) {
	b := New("test")
	if err := b.InsertAtCursors("hello"); err != nil {
		t.Fatal(err)
	}
	if b.String() != "hello" {
		t.Errorf("text = %q", b.String())
	}
	wantPositions(t, b, 5)
	if !b.Modified() {
		t.Error("buffer not marked modified")
	}
}

func TestInsertAtMultipleCursors(t *testing.T) {
	b := FromString("test", "abcdefghij")
	b.Cursors().Primary.SetPosition(2)
	b.Cursors().AddCursor(5)

	if err := b.InsertAtCursors("X"); err != nil {
		t.Fatal(err)
	}

	if got := b.String(); got != "abXcdeXfghij" {
		t.Errorf("text = %q, want %q", got, "abXcdeXfghij")
	}
	// Each cursor sits just after its own insertion.
	wantPositions(t, b, 3, 7)
}

func TestDeleteCharForwardAdjacentCursorsMerge(t *testing.T) {
	b := FromString("test", "abcdefgh")
	b.Cursors().Primary.SetPosition(3)
	b.Cursors().AddCursor(4)

	if _, err := b.DeleteCharForward(1); err != nil {
		t.Fatal(err)
	}

	if got := b.String(); got != "abcfgh" {
		t.Errorf("text = %q, want %q", got, "abcfgh")
	}
	// Both cursors land on 3 and merge into one.
	wantPositions(t, b, 3)
}

func TestDeleteCharBackward(t *testing.T) {
	b := FromString("test", "hello")
	b.Cursors().Primary.SetPosition(5)

	if _, err := b.DeleteCharBackward(1); err != nil {
		t.Fatal(err)
	}
	if b.String() != "hell" {
		t.Errorf("text = %q", b.String())
	}
	wantPositions(t, b, 4)
}

func TestDeleteCharBackwardAtStart(t *testing.T) {
	b := FromString("test", "hello")
	b.Cursors().Primary.SetPosition(0)

	removed, err := b.DeleteCharBackward(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 0 {
		t.Errorf("removed %v at buffer start", removed)
	}
	if b.String() != "hello" {
		t.Errorf("text = %q", b.String())
	}
}

func TestOverlappingSpansUnionMerge(t *testing.T) {
	b := FromString("test", "hello world")

	logBefore := b.History().Len()
	removed, err := b.DeleteSpans([]Span{{2, 8}, {5, 11}})
	if err != nil {
		t.Fatal(err)
	}

	if got := b.String(); got != "he" {
		t.Errorf("text = %q, want %q", got, "he")
	}
	if len(removed) != 1 || removed[0] != "llo world" {
		t.Errorf("removed = %v, want one merged span", removed)
	}
	// One merged span means exactly one undo entry was recorded.
	if got := b.History().Len() - logBefore; got != 1 {
		t.Errorf("recorded %d undo entries, want 1", got)
	}
}

func TestDisjointSpansStaySeparate(t *testing.T) {
	b := FromString("test", "aabbccdd")

	removed, err := b.DeleteSpans([]Span{{6, 8}, {0, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if b.String() != "bbcc" {
		t.Errorf("text = %q", b.String())
	}
	if len(removed) != 2 || removed[0] != "aa" || removed[1] != "dd" {
		t.Errorf("removed = %v, want [aa dd]", removed)
	}
}

func TestDeleteRegion(t *testing.T) {
	b := FromString("test", "hello cruel world")
	got, err := b.DeleteRegion(5, 11)
	if err != nil {
		t.Fatal(err)
	}
	if got != " cruel" {
		t.Errorf("removed = %q", got)
	}
	if b.String() != "hello world" {
		t.Errorf("text = %q", b.String())
	}
}

func TestReadOnlyRefusesMutation(t *testing.T) {
	b := FromString("test", "hello", WithReadOnly())

	if err := b.InsertAtCursors("x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("InsertAtCursors = %v, want ErrReadOnly", err)
	}
	if _, err := b.DeleteCharForward(1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("DeleteCharForward = %v, want ErrReadOnly", err)
	}
	if b.String() != "hello" {
		t.Errorf("read-only buffer mutated: %q", b.String())
	}
}

func TestUndoInsert(t *testing.T) {
	b := New("test")
	b.InsertAtCursors("hello")
	b.UndoBoundary()
	b.InsertAtCursors(" world")
	b.UndoBoundary()

	if err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "hello" {
		t.Errorf("after undo: %q, want %q", b.String(), "hello")
	}

	if err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "" {
		t.Errorf("after second undo: %q, want empty", b.String())
	}

	if err := b.Undo(); !errors.Is(err, history.ErrNothingToUndo) {
		t.Errorf("exhausted undo = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoMultiCursorInsertIsOneGroup(t *testing.T) {
	b := FromString("test", "abcdefghij")
	b.Cursors().Primary.SetPosition(2)
	b.Cursors().AddCursor(5)
	b.InsertAtCursors("X")
	b.UndoBoundary()

	if err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "abcdefghij" {
		t.Errorf("after undo: %q, want original text", b.String())
	}
	wantPositions(t, b, 2, 5)

	// Redo restores the cursors where the insert left them.
	b.History().EndSequence()
	if err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "abXcdeXfghij" {
		t.Errorf("after redo: %q, want %q", b.String(), "abXcdeXfghij")
	}
	wantPositions(t, b, 3, 7)
}

func TestUndoMultiCursorDeleteRestoresCursors(t *testing.T) {
	b := FromString("test", "one two three")
	b.Cursors().Primary.SetPosition(3)
	b.Cursors().AddCursor(7)
	if _, err := b.DeleteCharBackward(2); err != nil {
		t.Fatal(err)
	}
	b.UndoBoundary()
	if b.String() != "o t three" {
		t.Fatalf("after delete: %q", b.String())
	}
	wantPositions(t, b, 1, 3)

	if err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "one two three" {
		t.Errorf("after undo: %q, want original text", b.String())
	}
	wantPositions(t, b, 3, 7)
}

func TestUndoRoundTrip(t *testing.T) {
	b := FromString("test", "the quick brown fox")

	// A mixed sequence of grouped edits.
	b.Cursors().Primary.SetPosition(4)
	b.InsertAtCursors("very ")
	b.UndoBoundary()
	b.DeleteRegion(0, 4)
	b.UndoBoundary()
	b.Cursors().Primary.SetPosition(0)
	b.InsertAtCursors(">> ")
	b.UndoBoundary()

	for i := 0; i < 3; i++ {
		if err := b.Undo(); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
	}
	if b.String() != "the quick brown fox" {
		t.Errorf("round trip failed: %q", b.String())
	}
}

func TestUndoOfUndoRestoresEdit(t *testing.T) {
	b := New("test")
	b.InsertAtCursors("hello")
	b.UndoBoundary()

	if err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "" {
		t.Fatalf("after undo: %q", b.String())
	}

	// Breaking the sequence makes the next undo a redo.
	b.History().EndSequence()
	if err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "hello" {
		t.Errorf("undo-of-undo gave %q, want %q", b.String(), "hello")
	}
}

func TestReplacePreservesLength(t *testing.T) {
	b := FromString("test", "hello world")
	b.Cursors().Primary.SetPosition(11)

	if err := b.Replace(Span{0, 5}, "HELLO"); err != nil {
		t.Fatal(err)
	}
	if b.String() != "HELLO world" {
		t.Errorf("text = %q", b.String())
	}
	wantPositions(t, b, 11)

	b.UndoBoundary()
	if err := b.Undo(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "hello world" {
		t.Errorf("after undo: %q", b.String())
	}
}

func TestVerticalMotionGoalColumn(t *testing.T) {
	b := FromString("test", "a long first line\nhi\nanother long line")
	b.Cursors().Primary.SetPosition(10) // column 10, line 0

	b.MoveNextLine(1)
	// Line "hi" is short: cursor clamps to its end but remembers 10.
	p := b.Text().CharToPoint(b.Cursors().Primary.Position)
	if p.Line != 1 || p.Column != 2 {
		t.Fatalf("after down: line %d col %d, want 1,2", p.Line, p.Column)
	}

	b.MoveNextLine(1)
	p = b.Text().CharToPoint(b.Cursors().Primary.Position)
	if p.Line != 2 || p.Column != 10 {
		t.Errorf("goal column lost: line %d col %d, want 2,10", p.Line, p.Column)
	}
}

func TestBufferStartCollapsesCursors(t *testing.T) {
	b := FromString("test", "hello world")
	b.Cursors().Primary.SetPosition(3)
	b.Cursors().AddCursor(7)

	b.MoveBufferStart()
	wantPositions(t, b, 0)
}

func TestWordMotion(t *testing.T) {
	b := FromString("test", "hello world_foo bar")
	b.Cursors().Primary.SetPosition(0)

	b.MoveForwardWord(1)
	wantPositions(t, b, 5)
	b.MoveForwardWord(1)
	wantPositions(t, b, 15) // underscore is a word char

	b.MoveBackwardWord(1)
	wantPositions(t, b, 6)
}

func TestWordBoundaries(t *testing.T) {
	r := rope.FromString("hello world foo")

	tests := []struct {
		name string
		fn   func(rope.Rope, rope.CharOffset) rope.CharOffset
		from rope.CharOffset
		want rope.CharOffset
	}{
		{"forward from start", WordBoundaryForward, 0, 5},
		{"forward over space", WordBoundaryForward, 5, 11},
		{"forward mid-word", WordBoundaryForward, 6, 11},
		{"forward at end", WordBoundaryForward, 15, 15},
		{"backward from end", WordBoundaryBackward, 15, 12},
		{"backward over space", WordBoundaryBackward, 11, 6},
		{"backward to start", WordBoundaryBackward, 5, 0},
		{"backward at start", WordBoundaryBackward, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(r, tt.from); got != tt.want {
				t.Errorf("from %d: got %d, want %d", tt.from, got, tt.want)
			}
		})
	}
}

func TestWordAt(t *testing.T) {
	r := rope.FromString("foo bar_baz qux")

	tests := []struct {
		name string
		pos  rope.CharOffset
		word string
		span Span
		ok   bool
	}{
		{"mid word", 6, "bar_baz", Span{4, 11}, true},
		{"word start", 4, "bar_baz", Span{4, 11}, true},
		{"just past word", 11, "bar_baz", Span{4, 11}, true},
		{"buffer start", 0, "foo", Span{0, 3}, true},
		{"buffer end", 15, "qux", Span{12, 15}, true},
		{"on space after space", 3, "foo", Span{0, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, word, ok := WordAt(r, tt.pos)
			if ok != tt.ok || word != tt.word || sp != tt.span {
				t.Errorf("WordAt(%d) = (%+v, %q, %v), want (%+v, %q, %v)",
					tt.pos, sp, word, ok, tt.span, tt.word, tt.ok)
			}
		})
	}

	if _, _, ok := WordAt(rope.FromString("  "), 1); ok {
		t.Error("WordAt on whitespace-only text reported a word")
	}
}

func TestFindOccurrences(t *testing.T) {
	r := rope.FromString("ab réab ab")

	spans := FindOccurrences(r, "ab")
	want := []Span{{0, 2}, {5, 7}, {8, 10}}
	if len(spans) != len(want) {
		t.Fatalf("spans = %v, want %v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("spans = %v, want %v", spans, want)
			break
		}
	}
}

func TestMarkRing(t *testing.T) {
	m := NewMarkRing(3)
	m.Push(10)
	m.Push(20)
	m.Push(20) // duplicate front ignored
	m.Push(30)

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}

	m.Rotate()
	if cur, _ := m.Current(); cur != 20 {
		t.Errorf("after rotate Current() = %d, want 20", cur)
	}

	m.AdjustAfterInsert(15, 5)
	if cur, _ := m.Current(); cur != 25 {
		t.Errorf("after insert Current() = %d, want 25", cur)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := t.TempDir() + "/sample.txt"

	b := FromString("sample", "line one\nline two\n")
	if err := b.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if b.Modified() {
		t.Error("still modified after save")
	}

	loaded, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.String() != "line one\nline two\n" {
		t.Errorf("loaded = %q", loaded.String())
	}
	if loaded.Name() != "sample.txt" {
		t.Errorf("name = %q", loaded.Name())
	}
}
