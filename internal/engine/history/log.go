package history

import (
	"errors"

	"github.com/dmoose/multimacs/internal/engine/cursor"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

// ErrNothingToUndo is returned when the log has no group to walk.
var ErrNothingToUndo = errors.New("history: nothing to undo")

// DefaultMaxEntries bounds the log when no limit is configured.
const DefaultMaxEntries = 10000

// Log is the linear undo history of one buffer.
//
// Entries before position are the past; entries at and beyond position
// are the future left behind by an interrupted undo walk. Recording a
// fresh edit discards the future permanently. The undo command is the
// only reader: walking backward applies inverses, and walking forward
// (an undo issued after the previous undo sequence was broken) replays
// the future, which is how redo exists without being a separate
// mechanism.
type Log struct {
	entries  []Entry
	position int
	max      int

	inUndoSequence bool
	backward       bool // walk direction captured when the sequence began
}

// NewLog creates a log retaining at most maxEntries entries.
func NewLog(maxEntries int) *Log {
	if maxEntries < 1 {
		maxEntries = DefaultMaxEntries
	}
	return &Log{max: maxEntries}
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.entries)
}

// Position returns the current undo position.
func (l *Log) Position() int {
	return l.position
}

// InUndoSequence reports whether the last command was an undo.
func (l *Log) InUndoSequence() bool {
	return l.inUndoSequence
}

// CanUndo reports whether an undo command would have any effect.
func (l *Log) CanUndo() bool {
	return len(l.entries) > 0
}

// RecordInsert appends an insert entry, discarding any future entries.
func (l *Log) RecordInsert(pos rope.CharOffset, text string) {
	if text == "" {
		return
	}
	l.append(Entry{Kind: EntryInsert, Position: pos, Text: text})
}

// RecordDelete appends a delete entry, discarding any future entries.
func (l *Log) RecordDelete(pos rope.CharOffset, text string) {
	if text == "" {
		return
	}
	l.append(Entry{Kind: EntryDelete, Position: pos, Text: text})
}

// RecordCursorMove appends a cursor snapshot pair. Snapshots are cloned;
// callers may keep mutating the originals.
func (l *Log) RecordCursorMove(before, after *cursor.CursorSet) {
	l.append(Entry{
		Kind:   EntryCursorMove,
		Before: before.Clone(),
		After:  after.Clone(),
	})
}

// Boundary closes the current undo group. Redundant boundaries (empty
// log, or a boundary already last) are not recorded.
func (l *Log) Boundary() {
	l.truncateFuture()
	if len(l.entries) == 0 || l.entries[len(l.entries)-1].Kind == EntryBoundary {
		return
	}
	l.entries = append(l.entries, Entry{Kind: EntryBoundary})
	l.position = len(l.entries)
	l.evict()
}

func (l *Log) append(e Entry) {
	l.truncateFuture()
	l.entries = append(l.entries, e)
	l.position = len(l.entries)
	l.evict()
}

func (l *Log) truncateFuture() {
	if l.position < len(l.entries) {
		l.entries = l.entries[:l.position]
	}
}

// evict drops whole oldest groups while the log exceeds its cap.
// A group is never split.
func (l *Log) evict() {
	for len(l.entries) > l.max {
		cut := len(l.entries) // drop everything if no boundary found
		for i, e := range l.entries {
			if e.Kind == EntryBoundary {
				cut = i + 1
				break
			}
		}
		l.entries = append(l.entries[:0:0], l.entries[cut:]...)
		l.position -= cut
		if l.position < 0 {
			l.position = 0
		}
	}
}

// UndoStep is the result of one undo command: the edits to apply in
// order, and the cursor set to restore afterward (nil when the group
// recorded no cursor snapshot).
type UndoStep struct {
	Edits   []Edit
	Cursors *cursor.CursorSet
}

// Undo performs one step of the undo protocol and returns the edits the
// buffer must apply.
//
// Outside an undo sequence, a log whose future is empty walks backward
// (classic undo); a log with future entries replays the next future
// group (undo of the undo). Inside a sequence the walk continues in the
// direction captured at its start. Returns ErrNothingToUndo when the
// walk has no further group in its direction.
func (l *Log) Undo() (UndoStep, error) {
	if !l.inUndoSequence {
		l.backward = l.position >= len(l.entries)
		l.inUndoSequence = true
	}

	if l.backward {
		return l.undoBackward()
	}
	return l.replayForward()
}

// EndSequence marks the undo sequence broken. The engine calls this for
// every command other than undo.
func (l *Log) EndSequence() {
	l.inUndoSequence = false
}

func (l *Log) undoBackward() (UndoStep, error) {
	i := l.position
	for i > 0 && l.entries[i-1].Kind == EntryBoundary {
		i--
	}
	if i == 0 {
		l.position = 0
		return UndoStep{}, ErrNothingToUndo
	}

	end := i
	for i > 0 && l.entries[i-1].Kind != EntryBoundary {
		i--
	}

	var step UndoStep
	for j := end - 1; j >= i; j-- {
		e := l.entries[j]
		if edit, ok := e.inverse(); ok {
			step.Edits = append(step.Edits, edit)
		}
		// Later assignments win: walking backward, the group's earliest
		// snapshot is the state to restore.
		if e.Kind == EntryCursorMove {
			step.Cursors = e.Before.Clone()
		}
	}

	l.position = i
	return step, nil
}

func (l *Log) replayForward() (UndoStep, error) {
	i := l.position
	for i < len(l.entries) && l.entries[i].Kind == EntryBoundary {
		i++
	}
	if i >= len(l.entries) {
		l.position = len(l.entries)
		return UndoStep{}, ErrNothingToUndo
	}

	var step UndoStep
	for ; i < len(l.entries) && l.entries[i].Kind != EntryBoundary; i++ {
		e := l.entries[i]
		if edit, ok := e.replay(); ok {
			step.Edits = append(step.Edits, edit)
		}
		if e.Kind == EntryCursorMove {
			step.Cursors = e.After.Clone()
		}
	}

	l.position = i
	return step, nil
}

// Clear discards the whole history.
func (l *Log) Clear() {
	l.entries = nil
	l.position = 0
	l.inUndoSequence = false
}
