// Package buffer ties the engine together: a rope of text, the cursor
// set editing it, the mark ring, and the undo log.
//
// Multi-cursor edits follow one discipline throughout: spans are
// computed against the text as it was when the command started, applied
// in descending position order so lower offsets stay valid, and
// overlapping deletions union-merge so each region of text is deleted
// (and recorded for undo) exactly once. After every edit or motion the
// cursor set is re-sorted and coincident cursors merge.
package buffer
