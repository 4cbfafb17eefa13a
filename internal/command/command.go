package command

import "github.com/dmoose/multimacs/internal/editor"

// Context carries the per-invocation inputs supplied by the keybinding
// resolver: the numeric prefix argument (nil when absent), the name of
// the previously executed command, and a free-form string argument
// (the literal text for self-insert, a buffer name or file path for
// buffer commands).
type Context struct {
	PrefixArg   *int
	LastCommand string
	Arg         string
}

// Count returns the prefix argument, defaulting to 1.
func (c Context) Count() int {
	if c.PrefixArg == nil {
		return 1
	}
	return *c.PrefixArg
}

// HasPrefix reports whether a numeric prefix argument was given.
func (c Context) HasPrefix() bool { return c.PrefixArg != nil }

// Class is a command's undo-grouping class. Consecutive commands of
// the same class share one undo group; a class change inserts a
// boundary.
type Class uint8

const (
	// ClassOther is the class of commands with no special grouping.
	ClassOther Class = iota
	// ClassSelfInsert groups typed text.
	ClassSelfInsert
	// ClassDeletion groups character deletions.
	ClassDeletion
	// ClassKill groups kill commands.
	ClassKill
)

// String returns a string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassSelfInsert:
		return "self-insert"
	case ClassDeletion:
		return "deletion"
	case ClassKill:
		return "kill"
	default:
		return "other"
	}
}

// Func is a command implementation.
type Func func(st *editor.State, ctx Context) Result

// Command is one entry of the registry: the implementation plus the
// flags the engine consults while sequencing it against its neighbors.
type Command struct {
	// Name is the command identifier, e.g. "forward-char".
	Name string

	// Run is the implementation.
	Run Func

	// Class is the undo-grouping class.
	Class Class

	// IsKill marks commands that push to the kill ring; the engine
	// clears last-was-kill after every command where this is false.
	IsKill bool

	// PreservesMark marks commands that manage the mark themselves;
	// for all others the engine deactivates every cursor's mark.
	PreservesMark bool

	// Repeatable marks commands whose core logic honors the numeric
	// prefix argument; for all others the engine strips it.
	Repeatable bool
}
