package cursor

import "github.com/dmoose/multimacs/internal/engine/rope"

// NoGoal marks a cursor with no remembered vertical-motion column.
const NoGoal = -1

// Cursor is a single editing cursor: a point, an optional mark, and the
// goal column remembered across consecutive line motions.
type Cursor struct {
	// Position is the point, as a char offset into the buffer.
	Position rope.CharOffset

	// GoalColumn is the column vertical motion steers toward, or NoGoal
	// when the last command was not a line motion.
	GoalColumn int

	// Mark is the other end of the region. Valid only when HasMark.
	Mark rope.CharOffset

	// HasMark reports whether a mark has ever been set.
	HasMark bool

	// MarkActive reports whether the region between point and mark is
	// currently highlighted/operable.
	MarkActive bool
}

// New creates a cursor at the given position with no mark.
func New(position rope.CharOffset) Cursor {
	return Cursor{Position: position, GoalColumn: NoGoal}
}

// SetPosition moves the point and forgets the goal column.
func (c *Cursor) SetPosition(pos rope.CharOffset) {
	c.Position = pos
	c.GoalColumn = NoGoal
}

// SetMark places the mark at pos and activates the region.
func (c *Cursor) SetMark(pos rope.CharOffset) {
	c.Mark = pos
	c.HasMark = true
	c.MarkActive = true
}

// DeactivateMark turns off the region without forgetting the mark.
func (c *Cursor) DeactivateMark() {
	c.MarkActive = false
}

// ClearMark removes the mark entirely.
func (c *Cursor) ClearMark() {
	c.Mark = 0
	c.HasMark = false
	c.MarkActive = false
}

// Region returns the active region as an ordered [start, end) pair.
// ok is false when the mark is missing or inactive.
func (c Cursor) Region() (start, end rope.CharOffset, ok bool) {
	if !c.MarkActive || !c.HasMark {
		return 0, 0, false
	}
	if c.Mark < c.Position {
		return c.Mark, c.Position, true
	}
	return c.Position, c.Mark, true
}

// RegionOrPoint returns the active region, or the empty range at point
// when no region is active.
func (c Cursor) RegionOrPoint() (start, end rope.CharOffset) {
	if s, e, ok := c.Region(); ok {
		return s, e
	}
	return c.Position, c.Position
}

// ExchangePointAndMark swaps the point and the mark. No-op without a mark.
func (c *Cursor) ExchangePointAndMark() {
	if !c.HasMark {
		return
	}
	c.Position, c.Mark = c.Mark, c.Position
	c.GoalColumn = NoGoal
}
