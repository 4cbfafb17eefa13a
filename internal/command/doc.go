// Package command implements the command engine: an immutable registry
// of named commands and the execution protocol that runs one command
// per input event.
//
// Execution is where cross-command behavior lives. Undo grouping, kill
// ring merging, and mark deactivation are all decided by comparing the
// current command against the previous one, never by the current
// command alone. The engine inserts an undo boundary when the
// undo-grouping class changes, clears the kill ring's last-was-kill
// flag after non-kill commands, and deactivates marks after commands
// that do not manage them.
package command
