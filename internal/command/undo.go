package command

import (
	"errors"

	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/history"
)

func undoCommands() []Command {
	return []Command{
		{Name: "undo", Run: cmdUndo, Repeatable: true},
	}
}

// cmdUndo reverts one undo group per repetition. While the undo
// sequence stays unbroken the log keeps walking in the direction the
// sequence started with; any other command ends the sequence, after
// which undo reverses direction and becomes redo.
func cmdUndo(st *editor.State, ctx Context) Result {
	b := st.Current()
	n := ctx.Count()
	if n < 1 {
		n = 1
	}

	for i := 0; i < n; i++ {
		if err := b.Undo(); err != nil {
			if errors.Is(err, history.ErrNothingToUndo) {
				if i > 0 {
					break
				}
				return NoOp("No further undo information")
			}
			return readOnlyResult(err)
		}
	}
	return Successf("Undo")
}
