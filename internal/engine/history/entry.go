package history

import (
	"github.com/dmoose/multimacs/internal/engine/cursor"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

// EntryKind discriminates the undo entry variants.
type EntryKind uint8

const (
	// EntryInsert records text inserted at a position.
	EntryInsert EntryKind = iota

	// EntryDelete records text deleted from a position.
	EntryDelete

	// EntryCursorMove records cursor-set snapshots around a group.
	EntryCursorMove

	// EntryBoundary separates independent undo groups.
	EntryBoundary
)

// String returns a string representation of the kind.
func (k EntryKind) String() string {
	switch k {
	case EntryInsert:
		return "insert"
	case EntryDelete:
		return "delete"
	case EntryCursorMove:
		return "cursor-move"
	case EntryBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Entry is one record in the undo log. Text payloads are independent
// copies and never alias live buffer storage.
type Entry struct {
	Kind     EntryKind
	Position rope.CharOffset
	Text     string

	// Before and After are cursor-set snapshots for CursorMove entries.
	Before *cursor.CursorSet
	After  *cursor.CursorSet
}

// Edit is a buffer mutation produced by replaying the log. The buffer
// applies edits verbatim, without recording them back into the log.
type Edit struct {
	// Insert selects between inserting Text at Position and deleting
	// len(Text) chars at Position.
	Insert   bool
	Position rope.CharOffset
	Text     string
}

// inverse returns the edit that reverses this entry.
func (e Entry) inverse() (Edit, bool) {
	switch e.Kind {
	case EntryInsert:
		return Edit{Insert: false, Position: e.Position, Text: e.Text}, true
	case EntryDelete:
		return Edit{Insert: true, Position: e.Position, Text: e.Text}, true
	default:
		return Edit{}, false
	}
}

// replay returns the edit that re-applies this entry.
func (e Entry) replay() (Edit, bool) {
	switch e.Kind {
	case EntryInsert:
		return Edit{Insert: true, Position: e.Position, Text: e.Text}, true
	case EntryDelete:
		return Edit{Insert: false, Position: e.Position, Text: e.Text}, true
	default:
		return Edit{}, false
	}
}
