package command

import (
	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/buffer"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

func multiCursorCommands() []Command {
	return []Command{
		{Name: "add-cursor-at", Run: cmdAddCursorAt, Repeatable: true},
		{Name: "spawn-cursors-at-word-matches", Run: cmdSpawnCursorsAtWordMatches},
		{Name: "clear-multiple-cursors", Run: cmdClearMultipleCursors},
	}
}

// cmdAddCursorAt adds a secondary cursor at the character offset given
// by the prefix argument.
func cmdAddCursorAt(st *editor.State, ctx Context) Result {
	if !ctx.HasPrefix() {
		return Errorf("add-cursor-at requires a position argument")
	}
	b := st.Current()
	pos := rope.CharOffset(*ctx.PrefixArg)
	if pos < 0 {
		pos = 0
	}
	if pos > b.Len() {
		pos = b.Len()
	}

	before := b.Cursors().Clone()
	b.Cursors().AddCursor(pos)
	b.RecordCursorSnapshot(before, b.Cursors().Clone())
	return Successf("%d cursors", b.Cursors().Count())
}

// cmdSpawnCursorsAtWordMatches puts a cursor on every other occurrence
// of the word under the primary cursor, keeping each cursor at the
// same offset within its word.
func cmdSpawnCursorsAtWordMatches(st *editor.State, ctx Context) Result {
	b := st.Current()
	text := b.Text()
	primary := b.Cursors().Primary

	sp, word, ok := buffer.WordAt(text, primary.Position)
	if !ok {
		return NoOp("No word at point")
	}
	rel := primary.Position - sp.Start

	matches := buffer.FindOccurrences(text, word)
	before := b.Cursors().Clone()
	added := 0
	for _, m := range matches {
		if m == sp {
			continue
		}
		// Skip partial-word matches (e.g. "cat" inside "concatenate").
		if wsp, _, ok := buffer.WordAt(text, m.Start); !ok || wsp != m {
			continue
		}
		b.Cursors().AddCursor(m.Start + rel)
		added++
	}
	if added == 0 {
		return NoOp("No other occurrences of word")
	}

	b.Cursors().SortAndMerge()
	b.RecordCursorSnapshot(before, b.Cursors().Clone())
	return Successf("%d cursors on %q", b.Cursors().Count(), word)
}

func cmdClearMultipleCursors(st *editor.State, ctx Context) Result {
	cs := st.Current().Cursors()
	if !cs.IsMulti() {
		return NoOp("No secondary cursors")
	}
	cs.RemoveSecondary()
	return Successf("1 cursor")
}
