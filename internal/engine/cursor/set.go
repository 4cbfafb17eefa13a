package cursor

import (
	"sort"

	"github.com/dmoose/multimacs/internal/engine/rope"
)

// CursorSet manages the cursors of a buffer. There is always exactly one
// primary cursor; any number of secondary cursors may accompany it.
//
// Invariant: after any mutation the set is sorted by position with no two
// cursors at the same offset, and the primary is the lowest cursor. When
// cursors collide the primary's state survives the merge.
type CursorSet struct {
	Primary   Cursor
	Secondary []Cursor
}

// NewSet creates a set with a single cursor at offset 0.
func NewSet() *CursorSet {
	return &CursorSet{Primary: New(0)}
}

// Single creates a set with a single cursor at the given position.
func Single(position rope.CharOffset) *CursorSet {
	return &CursorSet{Primary: New(position)}
}

// Count returns the number of cursors.
func (cs *CursorSet) Count() int {
	return 1 + len(cs.Secondary)
}

// IsMulti returns true if there are multiple cursors.
func (cs *CursorSet) IsMulti() bool {
	return len(cs.Secondary) > 0
}

// All returns a copy of every cursor, primary first.
// The returned slice is safe to modify without affecting the set.
func (cs *CursorSet) All() []Cursor {
	result := make([]Cursor, 0, cs.Count())
	result = append(result, cs.Primary)
	result = append(result, cs.Secondary...)
	return result
}

// ForEach applies fn to every cursor in place, primary first.
func (cs *CursorSet) ForEach(fn func(*Cursor)) {
	fn(&cs.Primary)
	for i := range cs.Secondary {
		fn(&cs.Secondary[i])
	}
}

// Clone returns a deep copy of the set.
func (cs *CursorSet) Clone() *CursorSet {
	clone := &CursorSet{Primary: cs.Primary}
	if len(cs.Secondary) > 0 {
		clone.Secondary = make([]Cursor, len(cs.Secondary))
		copy(clone.Secondary, cs.Secondary)
	}
	return clone
}

// AddCursor adds a secondary cursor at the given position.
// Adding at an occupied position is a no-op.
func (cs *CursorSet) AddCursor(position rope.CharOffset) {
	if cs.Primary.Position == position {
		return
	}
	for _, c := range cs.Secondary {
		if c.Position == position {
			return
		}
	}
	cs.Secondary = append(cs.Secondary, New(position))
	cs.SortAndMerge()
}

// RemoveSecondary drops all secondary cursors, keeping only the primary.
func (cs *CursorSet) RemoveSecondary() {
	cs.Secondary = nil
}

// SortAndMerge restores the set invariant: cursors sorted ascending by
// position, coincident cursors merged (the primary's state wins a
// collision), and the lowest cursor promoted to primary.
func (cs *CursorSet) SortAndMerge() {
	if len(cs.Secondary) == 0 {
		return
	}

	all := cs.All()

	// Stable sort keeps the primary ahead of secondaries at the same
	// position, so dedup retains its state.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Position < all[j].Position
	})

	merged := all[:1]
	for _, c := range all[1:] {
		if c.Position != merged[len(merged)-1].Position {
			merged = append(merged, c)
		}
	}

	cs.Primary = merged[0]
	cs.Secondary = append([]Cursor(nil), merged[1:]...)
	if len(cs.Secondary) == 0 {
		cs.Secondary = nil
	}
}

// PositionsDescending returns every cursor position, highest first.
// Edits applied in this order leave lower offsets untouched.
func (cs *CursorSet) PositionsDescending() []rope.CharOffset {
	positions := make([]rope.CharOffset, 0, cs.Count())
	cs.ForEach(func(c *Cursor) {
		positions = append(positions, c.Position)
	})
	sort.Slice(positions, func(i, j int) bool {
		return positions[i] > positions[j]
	})
	return positions
}

// AdjustAfterInsert shifts cursors and marks for an insertion of length
// chars at insertPos. Cursors exactly at the insertion point stay put.
func (cs *CursorSet) AdjustAfterInsert(insertPos rope.CharOffset, length rope.CharOffset) {
	cs.ForEach(func(c *Cursor) {
		if c.Position > insertPos {
			c.Position += length
		}
		if c.HasMark && c.Mark > insertPos {
			c.Mark += length
		}
	})
}

// AdjustAfterDelete shifts cursors and marks for the deletion of
// [start, end). Cursors inside the deleted span collapse to its start.
func (cs *CursorSet) AdjustAfterDelete(start, end rope.CharOffset) {
	length := end - start
	cs.ForEach(func(c *Cursor) {
		switch {
		case c.Position >= end:
			c.Position -= length
		case c.Position > start:
			c.Position = start
		}
		if c.HasMark {
			switch {
			case c.Mark >= end:
				c.Mark -= length
			case c.Mark > start:
				c.Mark = start
			}
		}
	})
}

// DeactivateMarks turns off the region of every cursor.
func (cs *CursorSet) DeactivateMarks() {
	cs.ForEach(func(c *Cursor) {
		c.DeactivateMark()
	})
}

// ClearGoalColumns forgets the goal column of every cursor.
func (cs *CursorSet) ClearGoalColumns() {
	cs.ForEach(func(c *Cursor) {
		c.GoalColumn = NoGoal
	})
}

// Clamp forces every cursor and mark into [0, maxLen].
func (cs *CursorSet) Clamp(maxLen rope.CharOffset) {
	cs.ForEach(func(c *Cursor) {
		if c.Position > maxLen {
			c.Position = maxLen
		}
		if c.Position < 0 {
			c.Position = 0
		}
		if c.HasMark {
			if c.Mark > maxLen {
				c.Mark = maxLen
			}
			if c.Mark < 0 {
				c.Mark = 0
			}
		}
	})
	cs.SortAndMerge()
}
