package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/dmoose/multimacs/internal/engine/cursor"
	"github.com/dmoose/multimacs/internal/engine/history"
	"github.com/dmoose/multimacs/internal/engine/killring"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

var (
	// ErrReadOnly is returned by mutating operations on a read-only buffer.
	ErrReadOnly = errors.New("buffer: buffer is read-only")

	// ErrNoFilePath is returned by Save on a buffer not visiting a file.
	ErrNoFilePath = errors.New("buffer: buffer has no file path")

	// ErrOutOfRange is returned when a position exceeds the buffer bounds
	// in a context where clamping would be wrong.
	ErrOutOfRange = errors.New("buffer: position out of range")
)

var idCounter atomic.Uint64

// ID uniquely identifies a buffer within the process.
type ID uint64

func nextID() ID {
	return ID(idCounter.Add(1))
}

// Buffer owns one rope, one cursor set, one mark ring, and one undo log.
// It is the unit of undo; the kill ring is shared across buffers and
// lives with the editor, not here.
type Buffer struct {
	id       ID
	name     string
	path     string
	text     rope.Rope
	cursors  *cursor.CursorSet
	marks    *MarkRing
	undo     *history.Log
	modified bool
	readOnly bool
}

// Option configures a new buffer.
type Option func(*Buffer)

// WithUndoLimit bounds the buffer's undo log.
func WithUndoLimit(n int) Option {
	return func(b *Buffer) {
		b.undo = history.NewLog(n)
	}
}

// WithReadOnly marks the buffer read-only.
func WithReadOnly() Option {
	return func(b *Buffer) {
		b.readOnly = true
	}
}

// New creates an empty buffer with the given name.
func New(name string, opts ...Option) *Buffer {
	b := &Buffer{
		id:      nextID(),
		name:    name,
		cursors: cursor.NewSet(),
		marks:   NewMarkRing(DefaultMarkRingCapacity),
		undo:    history.NewLog(history.DefaultMaxEntries),
		text:    rope.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromString creates a buffer holding the given content.
func FromString(name, content string, opts ...Option) *Buffer {
	b := New(name, opts...)
	b.text = rope.FromString(content)
	return b
}

// FromFile creates a buffer visiting the file at path.
func FromFile(path string, opts ...Option) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	text, err := rope.FromReader(f)
	if err != nil {
		return nil, err
	}

	b := New(filepath.Base(path), opts...)
	b.path = path
	b.text = text
	return b, nil
}

// Save writes the buffer contents back to its file.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoFilePath
	}
	return b.SaveAs(b.path)
}

// SaveAs writes the buffer contents to path and makes the buffer visit it.
func (b *Buffer) SaveAs(path string) error {
	if err := os.WriteFile(path, []byte(b.text.String()), 0o644); err != nil {
		return err
	}
	b.path = path
	b.name = filepath.Base(path)
	b.modified = false
	return nil
}

// ID returns the buffer's process-unique identifier.
func (b *Buffer) ID() ID { return b.id }

// Name returns the buffer's display name.
func (b *Buffer) Name() string { return b.name }

// SetName renames the buffer.
func (b *Buffer) SetName(name string) { b.name = name }

// Path returns the visited file path, or "" for non-file buffers.
func (b *Buffer) Path() string { return b.path }

// SetPath makes the buffer visit path without reading or writing it.
func (b *Buffer) SetPath(path string) { b.path = path }

// Modified reports whether the buffer has unsaved changes.
func (b *Buffer) Modified() bool { return b.modified }

// SetModified overrides the modified flag.
func (b *Buffer) SetModified(m bool) { b.modified = m }

// ReadOnly reports whether the buffer refuses mutation.
func (b *Buffer) ReadOnly() bool { return b.readOnly }

// SetReadOnly toggles the read-only flag.
func (b *Buffer) SetReadOnly(ro bool) { b.readOnly = ro }

// Text returns the current rope. Ropes are immutable values, so the
// result is a stable snapshot regardless of later edits.
func (b *Buffer) Text() rope.Rope { return b.text }

// Cursors returns the buffer's cursor set.
func (b *Buffer) Cursors() *cursor.CursorSet { return b.cursors }

// Marks returns the buffer's mark ring.
func (b *Buffer) Marks() *MarkRing { return b.marks }

// History returns the buffer's undo log.
func (b *Buffer) History() *history.Log { return b.undo }

// Len returns the buffer length in characters.
func (b *Buffer) Len() rope.CharOffset { return b.text.Len() }

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return b.text.LineCount() }

// Slice returns the text in [start, end) as an independent string.
func (b *Buffer) Slice(start, end rope.CharOffset) string {
	return b.text.Slice(b.clamp(start), b.clamp(end))
}

// String returns the whole buffer text.
func (b *Buffer) String() string { return b.text.String() }

// CharAt returns the character at offset.
func (b *Buffer) CharAt(offset rope.CharOffset) (rune, bool) {
	return b.text.CharAt(offset)
}

// RestoreCursors replaces the cursor set with a clone of set, clamped
// to the buffer bounds.
func (b *Buffer) RestoreCursors(set *cursor.CursorSet) {
	b.cursors = set.Clone()
	b.ClampCursors()
}

// ClampCursors forces every cursor into the buffer bounds.
func (b *Buffer) ClampCursors() {
	b.cursors.Clamp(b.text.Len())
}

func (b *Buffer) clamp(pos rope.CharOffset) rope.CharOffset {
	if pos < 0 {
		return 0
	}
	if max := b.text.Len(); pos > max {
		return max
	}
	return pos
}

// PushKill sends killed text to the shared ring, merging with the
// previous kill per direction. Forward kills append, backward kills
// prepend, so consecutive kills read in buffer order.
func (b *Buffer) PushKill(ring *killring.Ring, text string, backward bool) {
	if backward {
		ring.PushPrepend(text)
	} else {
		ring.Push(text, ring.LastWasKill())
	}
}
