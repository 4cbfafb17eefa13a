package buffer

import (
	"github.com/dmoose/multimacs/internal/engine/cursor"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

// Motions move every cursor in the set. Any motion may make cursors
// collide (buffer start being the obvious one), so each re-establishes
// the sorted/merged invariant before returning.

// MoveForwardChar moves every cursor n characters right, clamped to the
// end of the buffer.
func (b *Buffer) MoveForwardChar(n int) {
	max := b.text.Len()
	b.cursors.ForEach(func(c *cursor.Cursor) {
		pos := c.Position + rope.CharOffset(n)
		if pos > max {
			pos = max
		}
		c.SetPosition(pos)
	})
	b.cursors.SortAndMerge()
}

// MoveBackwardChar moves every cursor n characters left, clamped to 0.
func (b *Buffer) MoveBackwardChar(n int) {
	b.cursors.ForEach(func(c *cursor.Cursor) {
		pos := c.Position - rope.CharOffset(n)
		if pos < 0 {
			pos = 0
		}
		c.SetPosition(pos)
	})
	b.cursors.SortAndMerge()
}

// MoveLineStart moves every cursor to the start of its line.
func (b *Buffer) MoveLineStart() {
	b.cursors.ForEach(func(c *cursor.Cursor) {
		p := b.text.CharToPoint(c.Position)
		c.Position = b.text.LineStartChar(p.Line)
		c.GoalColumn = 0
	})
	b.cursors.SortAndMerge()
}

// MoveLineEnd moves every cursor to the end of its line (before the
// newline).
func (b *Buffer) MoveLineEnd() {
	b.cursors.ForEach(func(c *cursor.Cursor) {
		p := b.text.CharToPoint(c.Position)
		c.SetPosition(b.text.LineEndChar(p.Line))
	})
	b.cursors.SortAndMerge()
}

// MoveNextLine moves every cursor down n lines, steering toward its
// goal column. The goal column survives consecutive vertical motions.
func (b *Buffer) MoveNextLine(n int) {
	b.moveVertical(n)
}

// MovePrevLine moves every cursor up n lines.
func (b *Buffer) MovePrevLine(n int) {
	b.moveVertical(-n)
}

func (b *Buffer) moveVertical(delta int) {
	lastLine := b.text.LineCount() - 1
	b.cursors.ForEach(func(c *cursor.Cursor) {
		p := b.text.CharToPoint(c.Position)
		goal := c.GoalColumn
		if goal == cursor.NoGoal {
			goal = p.Column
		}

		target := p.Line + delta
		if target < 0 {
			target = 0
		}
		if target > lastLine {
			target = lastLine
		}
		if target == p.Line {
			// Stuck at the first/last line: keep position, keep goal.
			c.GoalColumn = goal
			return
		}

		col := rope.CharOffset(goal)
		if lineLen := b.text.LineLenChars(target); col > lineLen {
			col = lineLen
		}
		c.Position = b.text.LineStartChar(target) + col
		c.GoalColumn = goal
	})
	b.cursors.SortAndMerge()
}

// MoveBufferStart moves every cursor to offset 0; the set collapses to
// a single cursor.
func (b *Buffer) MoveBufferStart() {
	b.cursors.ForEach(func(c *cursor.Cursor) {
		c.SetPosition(0)
	})
	b.cursors.SortAndMerge()
}

// MoveBufferEnd moves every cursor to the end of the buffer; the set
// collapses to a single cursor.
func (b *Buffer) MoveBufferEnd() {
	end := b.text.Len()
	b.cursors.ForEach(func(c *cursor.Cursor) {
		c.SetPosition(end)
	})
	b.cursors.SortAndMerge()
}

// MoveForwardWord moves every cursor past the end of the nth next word.
func (b *Buffer) MoveForwardWord(n int) {
	b.cursors.ForEach(func(c *cursor.Cursor) {
		pos := c.Position
		for i := 0; i < n; i++ {
			pos = WordBoundaryForward(b.text, pos)
		}
		c.SetPosition(pos)
	})
	b.cursors.SortAndMerge()
}

// MoveBackwardWord moves every cursor to the start of the nth previous
// word.
func (b *Buffer) MoveBackwardWord(n int) {
	b.cursors.ForEach(func(c *cursor.Cursor) {
		pos := c.Position
		for i := 0; i < n; i++ {
			pos = WordBoundaryBackward(b.text, pos)
		}
		c.SetPosition(pos)
	})
	b.cursors.SortAndMerge()
}

// GotoLine collapses to a single cursor at the start of the given
// 1-indexed line.
func (b *Buffer) GotoLine(line int) {
	if line < 1 {
		line = 1
	}
	if max := b.text.LineCount(); line > max {
		line = max
	}
	pos := b.text.LineStartChar(line - 1)
	b.cursors.RemoveSecondary()
	b.cursors.Primary.SetPosition(pos)
}
