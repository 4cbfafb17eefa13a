// Package keybind resolves key chords into command names.
//
// The terminal layer feeds chords ("C-x", "M-f", "a", "RET") one at a
// time; the resolver accumulates prefix sequences and the numeric
// argument (C-u and meta digits) and reports when a full binding, a
// pending prefix, a literal self-insert, or an unbound sequence has
// been seen. How chords are derived from terminal events is not this
// package's concern.
package keybind
