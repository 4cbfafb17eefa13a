// Package term is the tcell frontend: it owns the screen, translates
// key events into chords for the keybinding resolver, runs resolved
// commands through the engine, and draws the buffer, every cursor and
// region, the modeline, and the echo area.
//
// The engine below is presentation-agnostic; everything about columns,
// widths, and grapheme clusters lives here.
package term
