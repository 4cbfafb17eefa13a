package command

import (
	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/cursor"
)

func markCommands() []Command {
	return []Command{
		{Name: "set-mark-command", Run: cmdSetMark, PreservesMark: true, Repeatable: true},
		{Name: "exchange-point-and-mark", Run: cmdExchangePointAndMark, PreservesMark: true},
		{Name: "mark-whole-buffer", Run: cmdMarkWholeBuffer, PreservesMark: true},
		{Name: "keyboard-quit", Run: cmdKeyboardQuit},
	}
}

// cmdSetMark activates the mark at point for every cursor. The
// primary's previous position goes onto the buffer's mark ring; with a
// prefix argument the command pops the ring and jumps there instead.
func cmdSetMark(st *editor.State, ctx Context) Result {
	b := st.Current()

	if ctx.HasPrefix() {
		pos, ok := b.Marks().Pop()
		if !ok {
			return NoOp("No mark set in this buffer")
		}
		b.Cursors().RemoveSecondary()
		b.Cursors().Primary.SetPosition(pos)
		b.ClampCursors()
		return Success()
	}

	b.Marks().Push(b.Cursors().Primary.Position)
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		c.SetMark(c.Position)
	})
	return Successf("Mark set")
}

func cmdExchangePointAndMark(st *editor.State, ctx Context) Result {
	b := st.Current()
	exchanged := false
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		if c.HasMark {
			c.ExchangePointAndMark()
			c.MarkActive = true
			exchanged = true
		}
	})
	if !exchanged {
		return NoOp("No mark set in this buffer")
	}
	b.Cursors().SortAndMerge()
	return Success()
}

// cmdMarkWholeBuffer collapses to a single cursor at the end with an
// active mark at the start. The old position goes onto the mark ring.
func cmdMarkWholeBuffer(st *editor.State, ctx Context) Result {
	b := st.Current()
	cs := b.Cursors()
	cs.RemoveSecondary()
	b.Marks().Push(cs.Primary.Position)
	cs.Primary.SetPosition(b.Len())
	cs.Primary.SetMark(0)
	return Success()
}

// cmdKeyboardQuit drops secondary cursors and deactivates every mark.
func cmdKeyboardQuit(st *editor.State, ctx Context) Result {
	cs := st.Current().Cursors()
	cs.RemoveSecondary()
	cs.DeactivateMarks()
	return Successf("Quit")
}
