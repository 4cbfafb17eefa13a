// Package cursor provides the cursor and multi-cursor types for buffers.
//
// A Cursor is a point plus an optional mark (the two ends of the region)
// and the goal column used by vertical motion. A CursorSet holds one
// primary cursor and any number of secondaries, and maintains the
// invariant that cursors are sorted by position and pairwise distinct.
// Coincident cursors merge, with the primary's state surviving.
package cursor
