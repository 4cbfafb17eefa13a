package command

import (
	"strings"

	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/buffer"
	"github.com/dmoose/multimacs/internal/engine/cursor"
	"github.com/dmoose/multimacs/internal/engine/rope"
)

func killYankCommands() []Command {
	return []Command{
		{Name: "kill-line", Run: cmdKillLine, Class: ClassKill, IsKill: true, Repeatable: true},
		{Name: "kill-word", Run: cmdKillWord, Class: ClassKill, IsKill: true, Repeatable: true},
		{Name: "backward-kill-word", Run: cmdBackwardKillWord, Class: ClassKill, IsKill: true, Repeatable: true},
		{Name: "kill-region", Run: cmdKillRegion, Class: ClassKill, IsKill: true},
		{Name: "copy-region-as-kill", Run: cmdCopyRegionAsKill, Class: ClassKill, IsKill: true},
		{Name: "yank", Run: cmdYank, PreservesMark: true},
		{Name: "yank-pop", Run: cmdYankPop, PreservesMark: true},
	}
}

// killSpans deletes the spans and pushes the removed text, in buffer
// order, as one kill. With multiple cursors the pieces concatenate
// into a single ring entry.
func killSpans(st *editor.State, spans []buffer.Span, backward bool) Result {
	b := st.Current()
	removed, err := b.DeleteSpans(spans)
	if err != nil {
		return readOnlyResult(err)
	}
	text := strings.Join(removed, "")
	if text == "" {
		return Success()
	}
	b.PushKill(st.Kill(), text, backward)
	return Success()
}

// cmdKillLine kills from every cursor to the end of its line; at end
// of line it kills the newline instead. A prefix argument kills that
// many whole following lines.
func cmdKillLine(st *editor.State, ctx Context) Result {
	b := st.Current()
	text := b.Text()

	spans := make([]buffer.Span, 0, b.Cursors().Count())
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		p := text.CharToPoint(c.Position)
		var end rope.CharOffset
		if n := ctx.Count(); n > 1 {
			target := p.Line + n
			if target >= text.LineCount() {
				end = text.Len()
			} else {
				end = text.LineStartChar(target)
			}
		} else {
			end = text.LineEndChar(p.Line)
			if end == c.Position && end < text.Len() {
				end++ // at end of line, take the newline
			}
		}
		if end > c.Position {
			spans = append(spans, buffer.Span{Start: c.Position, End: end})
		}
	})
	return killSpans(st, spans, false)
}

func cmdKillWord(st *editor.State, ctx Context) Result {
	b := st.Current()
	text := b.Text()
	n := ctx.Count()

	spans := make([]buffer.Span, 0, b.Cursors().Count())
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		end := c.Position
		for i := 0; i < n; i++ {
			end = buffer.WordBoundaryForward(text, end)
		}
		if end > c.Position {
			spans = append(spans, buffer.Span{Start: c.Position, End: end})
		}
	})
	return killSpans(st, spans, false)
}

func cmdBackwardKillWord(st *editor.State, ctx Context) Result {
	b := st.Current()
	text := b.Text()
	n := ctx.Count()

	spans := make([]buffer.Span, 0, b.Cursors().Count())
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		start := c.Position
		for i := 0; i < n; i++ {
			start = buffer.WordBoundaryBackward(text, start)
		}
		if start < c.Position {
			spans = append(spans, buffer.Span{Start: start, End: c.Position})
		}
	})
	return killSpans(st, spans, true)
}

// regionSpans collects every cursor's active region.
func regionSpans(b *buffer.Buffer) []buffer.Span {
	var spans []buffer.Span
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		if start, end, ok := c.Region(); ok {
			spans = append(spans, buffer.Span{Start: start, End: end})
		}
	})
	return spans
}

func cmdKillRegion(st *editor.State, ctx Context) Result {
	spans := regionSpans(st.Current())
	if len(spans) == 0 {
		return NoOp("The mark is not set now, so there is no region")
	}
	return killSpans(st, spans, false)
}

func cmdCopyRegionAsKill(st *editor.State, ctx Context) Result {
	b := st.Current()
	spans := regionSpans(b)
	if len(spans) == 0 {
		return NoOp("The mark is not set now, so there is no region")
	}

	merged := buffer.MergeSpans(spans, b.Len())
	var sb strings.Builder
	for _, sp := range merged {
		sb.WriteString(b.Slice(sp.Start, sp.End))
	}
	b.PushKill(st.Kill(), sb.String(), false)
	return Success()
}

// cmdYank inserts the front of the kill ring at every cursor, leaving
// the mark at the start of the inserted text so yank-pop can find it.
func cmdYank(st *editor.State, ctx Context) Result {
	text, ok := st.Kill().Yank()
	if !ok {
		return NoOp("Kill ring is empty")
	}

	b := st.Current()
	if err := b.InsertAtCursors(text); err != nil {
		return readOnlyResult(err)
	}
	st.Kill().ResetYankPointer()

	count := rope.CountChars(text)
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		c.Mark = c.Position - count
		c.HasMark = true
		c.MarkActive = false
	})
	return Success()
}

// cmdYankPop replaces the text just yanked with the next older ring
// entry. Only valid immediately after yank or yank-pop.
func cmdYankPop(st *editor.State, ctx Context) Result {
	if ctx.LastCommand != "yank" && ctx.LastCommand != "yank-pop" {
		return NoOp("Previous command was not a yank")
	}
	next, ok := st.Kill().YankPop()
	if !ok {
		return NoOp("Kill ring is empty")
	}

	b := st.Current()
	count := rope.CountChars(next)

	// Each cursor's mark brackets its last yank. Replace highest
	// first, then pin the cursor to the end of the new text.
	type yankRegion struct{ start, end rope.CharOffset }
	var regions []yankRegion
	b.Cursors().ForEach(func(c *cursor.Cursor) {
		if c.HasMark && c.Mark <= c.Position {
			regions = append(regions, yankRegion{start: c.Mark, end: c.Position})
		}
	})
	if len(regions) == 0 {
		return NoOp("Previous command was not a yank")
	}
	before := b.Cursors().Clone()
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		if err := b.Replace(buffer.Span{Start: r.start, End: r.end}, next); err != nil {
			return readOnlyResult(err)
		}
	}

	b.Cursors().ForEach(func(c *cursor.Cursor) {
		if c.HasMark && c.Position == c.Mark {
			c.SetPosition(c.Mark + count)
			c.Mark = c.Position - count
			c.HasMark = true
			c.MarkActive = false
		}
	})
	b.Cursors().SortAndMerge()
	b.RecordCursorSnapshot(before, b.Cursors())
	return Success()
}
