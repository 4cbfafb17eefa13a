package buffer

import (
	"sort"

	"github.com/dmoose/multimacs/internal/engine/cursor"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

// Span is a half-open char range [Start, End).
type Span struct {
	Start, End rope.CharOffset
}

// Len returns the span length in characters.
func (s Span) Len() rope.CharOffset {
	return s.End - s.Start
}

// IsEmpty returns true for zero or inverted spans.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Overlaps reports whether two spans share at least one character.
// Merely adjacent spans do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// MergeSpans normalizes deletion spans: clamps each to [0, maxLen],
// drops empties, sorts ascending, and unions overlapping spans. Adjacent
// spans stay separate so that each keeps its own undo entry.
func MergeSpans(spans []Span, maxLen rope.CharOffset) []Span {
	norm := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 {
			s.Start = 0
		}
		if s.End > maxLen {
			s.End = maxLen
		}
		if !s.IsEmpty() {
			norm = append(norm, s)
		}
	}
	if len(norm) == 0 {
		return nil
	}

	sort.Slice(norm, func(i, j int) bool {
		if norm[i].Start != norm[j].Start {
			return norm[i].Start < norm[j].Start
		}
		return norm[i].End < norm[j].End
	})

	merged := norm[:1]
	for _, s := range norm[1:] {
		last := &merged[len(merged)-1]
		if s.Overlaps(*last) {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// InsertAtCursors inserts text at every cursor, leaving each cursor
// after its own insertion. Insertions are applied in descending
// position order so earlier offsets stay valid.
func (b *Buffer) InsertAtCursors(text string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if text == "" {
		return nil
	}

	before := b.cursors.Clone()
	count := rope.CountChars(text)
	for _, pos := range b.cursors.PositionsDescending() {
		pos = b.clamp(pos)
		b.undo.RecordInsert(pos, text)
		b.text = b.text.Insert(pos, text)
		b.cursors.AdjustAfterInsert(pos, count)
		b.marks.AdjustAfterInsert(pos, count)
	}

	b.cursors.ForEach(func(c *cursor.Cursor) {
		c.Position += count
		c.GoalColumn = cursor.NoGoal
		c.DeactivateMark()
	})

	b.modified = true
	b.cursors.SortAndMerge()
	b.undo.RecordCursorMove(before, b.cursors)
	return nil
}

// InsertAt inserts text at a single position. Cursors at the position
// do not move; cursors past it shift right.
func (b *Buffer) InsertAt(pos rope.CharOffset, text string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if text == "" {
		return nil
	}

	pos = b.clamp(pos)
	count := rope.CountChars(text)
	b.undo.RecordInsert(pos, text)
	b.text = b.text.Insert(pos, text)
	b.cursors.AdjustAfterInsert(pos, count)
	b.marks.AdjustAfterInsert(pos, count)
	b.modified = true
	return nil
}

// DeleteSpans deletes the given spans as one logical operation.
// Overlapping spans union-merge first, so each merged span produces
// exactly one undo entry. Spans are applied highest-first; cursors
// inside a deleted span collapse to its start and coincident cursors
// merge afterward. Returns the removed text of each merged span in
// ascending buffer order.
func (b *Buffer) DeleteSpans(spans []Span) ([]string, error) {
	if b.readOnly {
		return nil, ErrReadOnly
	}

	merged := MergeSpans(spans, b.text.Len())
	if len(merged) == 0 {
		return nil, nil
	}

	before := b.cursors.Clone()
	removed := make([]string, len(merged))
	for i := len(merged) - 1; i >= 0; i-- {
		sp := merged[i]
		text := b.text.Slice(sp.Start, sp.End)
		removed[i] = text
		b.undo.RecordDelete(sp.Start, text)
		b.text = b.text.Delete(sp.Start, sp.End)
		b.cursors.AdjustAfterDelete(sp.Start, sp.End)
		b.marks.AdjustAfterDelete(sp.Start, sp.End)
	}

	b.modified = true
	b.cursors.SortAndMerge()
	b.undo.RecordCursorMove(before, b.cursors)
	return removed, nil
}

// DeleteRegion deletes [start, end) and returns the removed text.
func (b *Buffer) DeleteRegion(start, end rope.CharOffset) (string, error) {
	removed, err := b.DeleteSpans([]Span{{Start: start, End: end}})
	if err != nil {
		return "", err
	}
	if len(removed) == 0 {
		return "", nil
	}
	return removed[0], nil
}

// DeleteCharForward deletes n characters after every cursor.
func (b *Buffer) DeleteCharForward(n int) ([]string, error) {
	if n < 1 {
		return nil, nil
	}
	spans := make([]Span, 0, b.cursors.Count())
	b.cursors.ForEach(func(c *cursor.Cursor) {
		spans = append(spans, Span{Start: c.Position, End: c.Position + rope.CharOffset(n)})
	})
	return b.DeleteSpans(spans)
}

// DeleteCharBackward deletes n characters before every cursor.
func (b *Buffer) DeleteCharBackward(n int) ([]string, error) {
	if n < 1 {
		return nil, nil
	}
	spans := make([]Span, 0, b.cursors.Count())
	b.cursors.ForEach(func(c *cursor.Cursor) {
		spans = append(spans, Span{Start: c.Position - rope.CharOffset(n), End: c.Position})
	})
	return b.DeleteSpans(spans)
}

// Replace substitutes the text of one span, recording a delete plus an
// insert so undo restores the original. Cursors keep their relative
// placement around the edit.
func (b *Buffer) Replace(sp Span, text string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	sp.Start = b.clamp(sp.Start)
	sp.End = b.clamp(sp.End)
	if sp.IsEmpty() && text == "" {
		return nil
	}

	old := b.text.Slice(sp.Start, sp.End)
	b.undo.RecordDelete(sp.Start, old)
	b.undo.RecordInsert(sp.Start, text)
	b.text = b.text.Replace(sp.Start, sp.End, text)

	count := rope.CountChars(text)
	b.cursors.AdjustAfterDelete(sp.Start, sp.End)
	b.cursors.AdjustAfterInsert(sp.Start, count)
	b.marks.AdjustAfterDelete(sp.Start, sp.End)
	b.marks.AdjustAfterInsert(sp.Start, count)

	b.modified = true
	b.cursors.SortAndMerge()
	return nil
}

// Undo performs one undo step, applying the inverse (or replayed) edits
// the log hands back. Returns history.ErrNothingToUndo when exhausted.
func (b *Buffer) Undo() error {
	if b.readOnly {
		return ErrReadOnly
	}

	step, err := b.undo.Undo()
	if err != nil {
		return err
	}

	var lastPos rope.CharOffset
	haveLastPos := false
	for _, e := range step.Edits {
		if e.Insert {
			pos := b.clamp(e.Position)
			count := rope.CountChars(e.Text)
			b.text = b.text.Insert(pos, e.Text)
			b.cursors.AdjustAfterInsert(pos, count)
			b.marks.AdjustAfterInsert(pos, count)
			lastPos, haveLastPos = pos+count, true
		} else {
			count := rope.CountChars(e.Text)
			start := b.clamp(e.Position)
			end := b.clamp(e.Position + count)
			if start < end {
				b.text = b.text.Delete(start, end)
				b.cursors.AdjustAfterDelete(start, end)
				b.marks.AdjustAfterDelete(start, end)
				lastPos, haveLastPos = start, true
			}
		}
		b.modified = true
	}

	// A group with a snapshot restores the whole set; otherwise the
	// primary lands at the last undone edit.
	if step.Cursors != nil {
		b.cursors = step.Cursors.Clone()
		b.ClampCursors()
	} else if haveLastPos {
		b.cursors.Primary.SetPosition(lastPos)
	}
	b.cursors.SortAndMerge()
	return nil
}

// CanUndo reports whether an undo command would do anything.
func (b *Buffer) CanUndo() bool {
	return b.undo.CanUndo()
}

// UndoBoundary closes the current undo group.
func (b *Buffer) UndoBoundary() {
	b.undo.Boundary()
}

// RecordCursorSnapshot stores before/after cursor sets in the undo log
// so undoing a group also restores where the cursors were.
func (b *Buffer) RecordCursorSnapshot(before, after *cursor.CursorSet) {
	b.undo.RecordCursorMove(before, after)
}
