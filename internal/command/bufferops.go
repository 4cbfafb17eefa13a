package command

import (
	"errors"
	"strings"

	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/buffer"
)

func bufferCommands() []Command {
	return []Command{
		{Name: "switch-to-buffer", Run: cmdSwitchToBuffer},
		{Name: "next-buffer", Run: cmdNextBuffer},
		{Name: "kill-buffer", Run: cmdKillBuffer},
		{Name: "list-buffers", Run: cmdListBuffers},
		{Name: "find-file", Run: cmdFindFile},
		{Name: "save-buffer", Run: cmdSaveBuffer},
		{Name: "write-file", Run: cmdWriteFile},
	}
}

func cmdSwitchToBuffer(st *editor.State, ctx Context) Result {
	if ctx.Arg == "" {
		return Errorf("switch-to-buffer requires a buffer name")
	}
	if err := st.SwitchTo(ctx.Arg); err != nil {
		if errors.Is(err, editor.ErrNoSuchBuffer) {
			return NoOp("No buffer named " + ctx.Arg)
		}
		return Error(err)
	}
	return Success()
}

func cmdNextBuffer(st *editor.State, ctx Context) Result {
	st.NextBuffer()
	return Successf("%s", st.Current().Name())
}

func cmdKillBuffer(st *editor.State, ctx Context) Result {
	name := ctx.Arg
	if err := st.KillBuffer(name); err != nil {
		if errors.Is(err, editor.ErrNoSuchBuffer) {
			return NoOp("No buffer named " + name)
		}
		return Error(err)
	}
	return Success()
}

func cmdListBuffers(st *editor.State, ctx Context) Result {
	var sb strings.Builder
	for i, b := range st.Buffers() {
		if i > 0 {
			sb.WriteString("  ")
		}
		if b.Modified() {
			sb.WriteString("*")
		}
		sb.WriteString(b.Name())
	}
	return Successf("%s", sb.String())
}

func cmdFindFile(st *editor.State, ctx Context) Result {
	if ctx.Arg == "" {
		return Errorf("find-file requires a file name")
	}
	if err := st.FindFile(ctx.Arg); err != nil {
		return Error(err)
	}
	return Success()
}

func cmdSaveBuffer(st *editor.State, ctx Context) Result {
	b := st.Current()
	if !b.Modified() && b.Path() != "" {
		return NoOp("(No changes need to be saved)")
	}
	if err := st.SaveCurrent(); err != nil {
		if errors.Is(err, buffer.ErrNoFilePath) {
			return NoOp("Buffer has no file name; use write-file")
		}
		return Error(err)
	}
	return Successf("Wrote %s", b.Path())
}

func cmdWriteFile(st *editor.State, ctx Context) Result {
	if ctx.Arg == "" {
		return Errorf("write-file requires a file name")
	}
	if err := st.WriteCurrent(ctx.Arg); err != nil {
		return Error(err)
	}
	return Successf("Wrote %s", st.Current().Path())
}
