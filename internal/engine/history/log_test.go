package history

import (
	"errors"
	"testing"

	"github.com/dmoose/multimacs/internal/engine/cursor"
)

func TestUndoInsert(t *testing.T) {
	l := NewLog(100)
	l.RecordInsert(0, "hello")
	l.Boundary()

	step, err := l.Undo()
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if len(step.Edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(step.Edits))
	}
	e := step.Edits[0]
	if e.Insert || e.Position != 0 || e.Text != "hello" {
		t.Errorf("edit = %+v, want delete of %q at 0", e, "hello")
	}
}

func TestUndoDelete(t *testing.T) {
	l := NewLog(100)
	l.RecordDelete(3, "abc")
	l.Boundary()

	step, err := l.Undo()
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	e := step.Edits[0]
	if !e.Insert || e.Position != 3 || e.Text != "abc" {
		t.Errorf("edit = %+v, want insert of %q at 3", e, "abc")
	}
}

func TestUndoEmptyLog(t *testing.T) {
	l := NewLog(100)
	if _, err := l.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() on empty log = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoGroupsSeparatedByBoundary(t *testing.T) {
	l := NewLog(100)
	l.RecordInsert(0, "h")
	l.RecordInsert(1, "i")
	l.Boundary()
	l.RecordInsert(2, "yo")
	l.Boundary()

	// First undo removes "yo" only.
	step, err := l.Undo()
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if len(step.Edits) != 1 || step.Edits[0].Text != "yo" {
		t.Fatalf("first undo = %+v, want single edit for %q", step.Edits, "yo")
	}

	// Second undo removes both chars of the first group, last first.
	step, err = l.Undo()
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if len(step.Edits) != 2 {
		t.Fatalf("second undo got %d edits, want 2", len(step.Edits))
	}
	if step.Edits[0].Text != "i" || step.Edits[1].Text != "h" {
		t.Errorf("inverse order wrong: %+v", step.Edits)
	}

	if _, err := l.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("third undo = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoOfUndoIsRedo(t *testing.T) {
	l := NewLog(100)
	l.RecordInsert(0, "hello")
	l.Boundary()

	// Undo, then break the sequence with a non-undo command.
	if _, err := l.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	l.EndSequence()

	// The next undo replays the future: the insert comes back.
	step, err := l.Undo()
	if err != nil {
		t.Fatalf("redo-undo error: %v", err)
	}
	if len(step.Edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(step.Edits))
	}
	e := step.Edits[0]
	if !e.Insert || e.Text != "hello" {
		t.Errorf("replay edit = %+v, want insert of %q", e, "hello")
	}
}

func TestUndoSequenceContinuesBackward(t *testing.T) {
	l := NewLog(100)
	l.RecordInsert(0, "a")
	l.Boundary()
	l.RecordInsert(1, "b")
	l.Boundary()
	l.RecordInsert(2, "c")
	l.Boundary()

	// Three undos in a row walk all the way back, never re-playing.
	for i, want := range []string{"c", "b", "a"} {
		step, err := l.Undo()
		if err != nil {
			t.Fatalf("undo %d error: %v", i, err)
		}
		if step.Edits[0].Text != want {
			t.Errorf("undo %d removed %q, want %q", i, step.Edits[0].Text, want)
		}
	}
}

func TestFreshEditDiscardsFuture(t *testing.T) {
	l := NewLog(100)
	l.RecordInsert(0, "old")
	l.Boundary()

	if _, err := l.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	l.EndSequence()

	// A fresh edit truncates the undone group.
	l.RecordInsert(0, "new")
	l.Boundary()

	step, err := l.Undo()
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if step.Edits[0].Text != "new" {
		t.Errorf("undo after fresh edit = %q, want %q", step.Edits[0].Text, "new")
	}
	if _, err := l.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected exhausted history, got %v", err)
	}
}

func TestCursorMoveRestoresSnapshots(t *testing.T) {
	before := cursor.Single(5)
	after := cursor.Single(11)

	l := NewLog(100)
	l.RecordCursorMove(before, after)
	l.RecordInsert(5, "world!")
	l.Boundary()

	step, err := l.Undo()
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if step.Cursors == nil || step.Cursors.Primary.Position != 5 {
		t.Errorf("backward undo cursors = %+v, want position 5", step.Cursors)
	}

	l.EndSequence()
	step, err = l.Undo()
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if step.Cursors == nil || step.Cursors.Primary.Position != 11 {
		t.Errorf("forward replay cursors = %+v, want position 11", step.Cursors)
	}
}

func TestGroupWithSeveralSnapshots(t *testing.T) {
	// Two edits in one group, each with its own snapshot pair: undo
	// restores the state before the first, replay the state after the
	// last.
	l := NewLog(100)
	l.RecordInsert(0, "a")
	l.RecordCursorMove(cursor.Single(0), cursor.Single(1))
	l.RecordInsert(1, "b")
	l.RecordCursorMove(cursor.Single(1), cursor.Single(2))
	l.Boundary()

	step, err := l.Undo()
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if step.Cursors == nil || step.Cursors.Primary.Position != 0 {
		t.Errorf("backward undo cursors = %+v, want position 0", step.Cursors)
	}

	l.EndSequence()
	step, err = l.Undo()
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if step.Cursors == nil || step.Cursors.Primary.Position != 2 {
		t.Errorf("forward replay cursors = %+v, want position 2", step.Cursors)
	}
}

func TestEvictionDropsWholeGroups(t *testing.T) {
	l := NewLog(6)
	for i := 0; i < 5; i++ {
		l.RecordInsert(0, "x")
		l.Boundary()
	}

	if l.Len() > 6 {
		t.Errorf("Len() = %d, want <= 6", l.Len())
	}
	// Remaining history must still undo cleanly group by group.
	n := 0
	for {
		if _, err := l.Undo(); err != nil {
			break
		}
		n++
	}
	if n == 0 {
		t.Error("no groups survived eviction")
	}
}

func TestRedundantBoundariesNotRecorded(t *testing.T) {
	l := NewLog(100)
	l.Boundary()
	l.Boundary()
	if l.Len() != 0 {
		t.Errorf("Len() = %d after boundaries on empty log, want 0", l.Len())
	}

	l.RecordInsert(0, "x")
	l.Boundary()
	l.Boundary()
	l.Boundary()
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (entry + single boundary)", l.Len())
	}
}
