// Package rope provides an immutable rope data structure for efficient text storage and manipulation.
//
// A rope is a balanced tree where leaf nodes contain text chunks and internal
// nodes store aggregated metrics (character count, line count). This
// implementation uses a B+ tree variant for better cache locality and
// worst-case performance.
//
// All public operations address text by character (rune) offset; the line
// metrics carried in each summary make line/char conversion O(log n) in both
// directions.
//
// Key features:
//   - O(log n) insertion, deletion, and access operations
//   - Immutable operations return new ropes; originals are never modified
//   - Copy-on-write semantics enable cheap snapshots
//   - Thread-safe for concurrent read access
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	r = r.Delete(0, 6)             // "world"
//	text := r.String()             // "world"
package rope
