package command

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmoose/multimacs/internal/editor"
)

// undoCommandName is exempt from undo-sequence termination so that
// repeated undo walks further back instead of redoing itself.
const undoCommandName = "undo"

// Engine executes commands against the editor state, one fully
// completed invocation per input event.
type Engine struct {
	reg   *Registry
	state *editor.State

	lastName  string
	lastClass Class
	haveLast  bool
}

// NewEngine creates an engine executing against st.
func NewEngine(reg *Registry, st *editor.State) *Engine {
	return &Engine{reg: reg, state: st}
}

// State returns the editor state the engine drives.
func (e *Engine) State() *editor.State { return e.state }

// LastCommand returns the name of the most recently executed command.
func (e *Engine) LastCommand() string { return e.lastName }

// Execute runs the named command. The sequencing around the command's
// own logic is what makes commands compose: the undo boundary is
// decided by comparing grouping classes with the previous command, the
// kill ring's merge flag survives only across kill commands, and marks
// deactivate unless the command manages them.
func (e *Engine) Execute(name string, ctx Context) Result {
	cmd, err := e.reg.Lookup(name)
	if err != nil {
		res := Errorf("no such command: %s", name)
		e.state.SetMessage("%s", res.Message)
		return res
	}

	if ctx.LastCommand == "" && e.haveLast {
		ctx.LastCommand = e.lastName
	}
	if !cmd.Repeatable {
		ctx.PrefixArg = nil
	}

	buf := e.state.Current()

	// Close the previous undo group when the grouping class changes.
	// Within a run of self-inserts, a word-boundary character also
	// closes the group, so undo peels back one word at a time.
	switch {
	case !e.haveLast || cmd.Class != e.lastClass:
		buf.UndoBoundary()
	case cmd.Class == ClassSelfInsert && breaksInsertGroup(ctx.Arg):
		buf.UndoBoundary()
	}

	res := cmd.Run(e.state, ctx)

	if !cmd.IsKill {
		e.state.Kill().SetLastWasKill(false)
	}
	if cmd.Name != undoCommandName {
		buf.History().EndSequence()
	}
	if !cmd.PreservesMark {
		buf.Cursors().DeactivateMarks()
	}

	e.lastName = cmd.Name
	e.lastClass = cmd.Class
	e.haveLast = true

	if res.Message != "" {
		e.state.SetMessage("%s", res.Message)
	}
	return res
}

// asciiPunct matches is_ascii_punctuation: the printable ASCII
// characters that are neither letters, digits, nor space.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// breaksInsertGroup reports whether typing s should end the current
// coalesced self-insert undo group.
func breaksInsertGroup(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r) || strings.ContainsRune(asciiPunct, r)
}
