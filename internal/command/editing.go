package command

import (
	"errors"
	"strings"

	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/buffer"
	"github.com/dmoose/multimacs/internal/engine/cursor"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

func editingCommands() []Command {
	return []Command{
		{Name: "self-insert", Run: cmdSelfInsert, Class: ClassSelfInsert, Repeatable: true},
		{Name: "newline", Run: cmdNewline, Repeatable: true},
		{Name: "open-line", Run: cmdOpenLine, Repeatable: true},
		{Name: "delete-char", Run: cmdDeleteChar, Class: ClassDeletion, Repeatable: true},
		{Name: "delete-backward-char", Run: cmdDeleteBackwardChar, Class: ClassDeletion, Repeatable: true},
		{Name: "transpose-chars", Run: cmdTransposeChars},
	}
}

// readOnlyResult maps mutation errors to the echo-area message the
// frontend shows; other errors pass through.
func readOnlyResult(err error) Result {
	if errors.Is(err, buffer.ErrReadOnly) {
		return NoOp("Buffer is read-only")
	}
	return Error(err)
}

func cmdSelfInsert(st *editor.State, ctx Context) Result {
	if ctx.Arg == "" {
		return NoOp("Nothing to insert")
	}
	text := ctx.Arg
	if n := ctx.Count(); n > 1 {
		text = strings.Repeat(text, n)
	}
	if err := st.Current().InsertAtCursors(text); err != nil {
		return readOnlyResult(err)
	}
	return Success()
}

func cmdNewline(st *editor.State, ctx Context) Result {
	n := ctx.Count()
	if n < 1 {
		return Success()
	}
	if err := st.Current().InsertAtCursors(strings.Repeat("\n", n)); err != nil {
		return readOnlyResult(err)
	}
	return Success()
}

// cmdOpenLine inserts a newline after every cursor without moving it.
func cmdOpenLine(st *editor.State, ctx Context) Result {
	n := ctx.Count()
	if n < 1 {
		return Success()
	}
	b := st.Current()
	if err := b.InsertAtCursors(strings.Repeat("\n", n)); err != nil {
		return readOnlyResult(err)
	}
	b.MoveBackwardChar(n)
	return Success()
}

func cmdDeleteChar(st *editor.State, ctx Context) Result {
	if _, err := st.Current().DeleteCharForward(ctx.Count()); err != nil {
		return readOnlyResult(err)
	}
	return Success()
}

func cmdDeleteBackwardChar(st *editor.State, ctx Context) Result {
	if _, err := st.Current().DeleteCharBackward(ctx.Count()); err != nil {
		return readOnlyResult(err)
	}
	return Success()
}

// cmdTransposeChars swaps the characters around every cursor and drags
// the cursor forward; at end of line or buffer it swaps the two
// characters before the cursor instead. Swap spans are computed on the
// pre-command text and applied highest first.
func cmdTransposeChars(st *editor.State, ctx Context) Result {
	b := st.Current()
	if b.Len() < 2 {
		return NoOp("Don't have two things to transpose")
	}

	type swap struct {
		span      buffer.Span
		swapped   string
		collapsed rope.CharOffset // where the cursor lands after Replace
		final     rope.CharOffset // where it should land
	}
	var swaps []swap
	for _, pos := range b.Cursors().PositionsDescending() {
		atEdge := pos >= b.Len()
		if !atEdge {
			if r, ok := b.CharAt(pos); ok && r == '\n' {
				atEdge = true
			}
		}

		var sp buffer.Span
		var final rope.CharOffset
		if atEdge {
			if pos < 2 {
				continue
			}
			sp = buffer.Span{Start: pos - 2, End: pos}
			final = pos
		} else {
			if pos < 1 {
				continue
			}
			sp = buffer.Span{Start: pos - 1, End: pos + 1}
			final = pos + 1
		}

		runes := []rune(b.Slice(sp.Start, sp.End))
		if len(runes) != 2 {
			continue
		}
		swaps = append(swaps, swap{
			span:      sp,
			swapped:   string([]rune{runes[1], runes[0]}),
			collapsed: sp.Start,
			final:     final,
		})
	}
	if len(swaps) == 0 {
		return NoOp("Don't have two things to transpose")
	}

	before := b.Cursors().Clone()
	want := make(map[rope.CharOffset]rope.CharOffset, len(swaps))
	for _, s := range swaps {
		if err := b.Replace(s.span, s.swapped); err != nil {
			return readOnlyResult(err)
		}
		want[s.collapsed] = s.final
	}

	b.Cursors().ForEach(func(c *cursor.Cursor) {
		if final, ok := want[c.Position]; ok {
			c.SetPosition(final)
		}
	})
	b.Cursors().SortAndMerge()
	b.RecordCursorSnapshot(before, b.Cursors())
	return Success()
}
