package command

import (
	"strings"

	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/buffer"
)

func regionCommands() []Command {
	return []Command{
		{Name: "upcase-region", Run: caseRegion(strings.ToUpper)},
		{Name: "downcase-region", Run: caseRegion(strings.ToLower)},
	}
}

// caseRegion rewrites every cursor's active region through transform,
// highest region first.
func caseRegion(transform func(string) string) Func {
	return func(st *editor.State, ctx Context) Result {
		b := st.Current()
		spans := regionSpans(b)
		if len(spans) == 0 {
			return NoOp("The mark is not set now, so there is no region")
		}

		// Case mapping almost always keeps the text length, so the
		// saved cursors still point at the same characters; the rare
		// length-changing mapping gets clamped on restore.
		saved := b.Cursors().Clone()

		merged := buffer.MergeSpans(spans, b.Len())
		changed := false
		for i := len(merged) - 1; i >= 0; i-- {
			sp := merged[i]
			text := b.Slice(sp.Start, sp.End)
			replaced := transform(text)
			if replaced == text {
				continue
			}
			if err := b.Replace(sp, replaced); err != nil {
				return readOnlyResult(err)
			}
			changed = true
		}
		if changed {
			b.RestoreCursors(saved)
			b.RecordCursorSnapshot(saved, b.Cursors())
		}
		return Success()
	}
}
