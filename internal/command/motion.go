package command

import (
	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/buffer"
	"github.com/dmoose/multimacs/internal/engine/cursor"
)

func motionCommands() []Command {
	plain := []Command{
		{Name: "forward-char", Run: moveBy((*buffer.Buffer).MoveForwardChar), Repeatable: true},
		{Name: "backward-char", Run: moveBy((*buffer.Buffer).MoveBackwardChar), Repeatable: true},
		{Name: "next-line", Run: moveBy((*buffer.Buffer).MoveNextLine), Repeatable: true},
		{Name: "previous-line", Run: moveBy((*buffer.Buffer).MovePrevLine), Repeatable: true},
		{Name: "forward-word", Run: moveBy((*buffer.Buffer).MoveForwardWord), Repeatable: true},
		{Name: "backward-word", Run: moveBy((*buffer.Buffer).MoveBackwardWord), Repeatable: true},
		{Name: "move-beginning-of-line", Run: moveTo((*buffer.Buffer).MoveLineStart)},
		{Name: "move-end-of-line", Run: moveTo((*buffer.Buffer).MoveLineEnd)},
		{Name: "beginning-of-buffer", Run: moveTo((*buffer.Buffer).MoveBufferStart)},
		{Name: "end-of-buffer", Run: moveTo((*buffer.Buffer).MoveBufferEnd)},
	}

	cmds := make([]Command, 0, 2*len(plain)+1)
	for _, c := range plain {
		cmds = append(cmds, c)
		cmds = append(cmds, shiftVariant(c))
	}
	cmds = append(cmds, Command{
		Name: "goto-line", Run: cmdGotoLine, Repeatable: true,
	})
	return cmds
}

// moveBy adapts a counted motion method into a command.
func moveBy(motion func(*buffer.Buffer, int)) Func {
	return func(st *editor.State, ctx Context) Result {
		n := ctx.Count()
		if n < 1 {
			return Success()
		}
		motion(st.Current(), n)
		return Success()
	}
}

// moveTo adapts an absolute motion method into a command.
func moveTo(motion func(*buffer.Buffer)) Func {
	return func(st *editor.State, ctx Context) Result {
		motion(st.Current())
		return Success()
	}
}

// shiftVariant wraps a motion so it extends the region instead of
// deactivating it: every cursor without an active mark gets one at its
// pre-motion position, then the motion runs unchanged.
func shiftVariant(c Command) Command {
	base := c.Run
	return Command{
		Name:          c.Name + "-shift",
		Repeatable:    c.Repeatable,
		PreservesMark: true,
		Run: func(st *editor.State, ctx Context) Result {
			st.Current().Cursors().ForEach(func(cur *cursor.Cursor) {
				if !cur.MarkActive {
					cur.SetMark(cur.Position)
				}
			})
			return base(st, ctx)
		},
	}
}

func cmdGotoLine(st *editor.State, ctx Context) Result {
	if !ctx.HasPrefix() {
		return Errorf("goto-line requires a line number argument")
	}
	st.Current().GotoLine(*ctx.PrefixArg)
	return Success()
}
