// Package history implements the linear undo log of a buffer.
//
// Every mutation is recorded as an invertible entry; boundary entries
// separate undo groups. Undo walks backward one group at a time. There
// is no separate redo: an undo that follows a broken undo sequence
// replays the entries the previous walk left in its future, so redo is
// literally undoing the undo.
package history
