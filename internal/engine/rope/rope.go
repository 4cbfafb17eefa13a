package rope

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Rope is an immutable rope data structure for efficient text storage.
// Operations return new Rope values; the original is never modified.
// This enables cheap snapshots and thread-safe concurrent read access,
// and means extracted slices never alias live rope storage.
//
// All offsets are character (rune) offsets.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}

	chunks := splitIntoChunks(s)
	return buildFromChunks(chunks)
}

// FromReader creates a rope from an io.Reader.
func FromReader(r io.Reader) (Rope, error) {
	var builder Builder
	buf := make([]byte, 64*1024) // 64KB read buffer

	for {
		n, err := r.Read(buf)
		if n > 0 {
			builder.WriteString(string(buf[:n]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Rope{}, err
		}
	}

	return builder.Build(), nil
}

// buildFromChunks builds a rope from a slice of chunks.
func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	var leaves []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := i + MaxChunksPerLeaf
		if end > len(chunks) {
			end = len(chunks)
		}
		leafChunks := make([]Chunk, end-i)
		copy(leafChunks, chunks[i:end])
		leaves = append(leaves, newLeafNodeWithChunks(leafChunks))
	}

	nodes := leaves
	for len(nodes) > 1 {
		var parents []*Node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := i + MaxChildren
			if end > len(nodes) {
				end = len(nodes)
			}
			children := make([]*Node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}

	if len(nodes) == 0 {
		return New()
	}
	return Rope{root: nodes[0]}
}

// Len returns the total character length.
func (r Rope) Len() CharOffset {
	if r.root == nil {
		return 0
	}
	return r.root.Chars()
}

// ByteLen returns the total UTF-8 byte length.
func (r Rope) ByteLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.LineCount()
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(r.ByteLen())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the char range [start, end).
// The result is an independent string that never aliases rope storage.
func (r Rope) Slice(start, end CharOffset) string {
	if r.root == nil || start >= end {
		return ""
	}
	if start < 0 {
		start = 0
	}
	return r.root.textInRange(start, end)
}

// CharAt returns the character at the given offset.
// Returns 0 and false if offset is out of range.
func (r Rope) CharAt(offset CharOffset) (rune, bool) {
	if r.root == nil || offset < 0 || offset >= r.Len() {
		return 0, false
	}

	node := r.root
	for !node.IsLeaf() {
		idx, childOffset := node.findChildByChar(offset)
		node = node.children[idx]
		offset = childOffset
	}

	for _, chunk := range node.chunks {
		chunkLen := chunk.Chars()
		if offset < chunkLen {
			b := chunk.charToByte(offset)
			ch, _ := utf8.DecodeRuneInString(chunk.String()[b:])
			return ch, true
		}
		offset -= chunkLen
	}

	return 0, false
}

// Insert inserts text at the given char offset.
// Returns a new rope; original is unchanged.
func (r Rope) Insert(offset CharOffset, text string) Rope {
	if len(text) == 0 {
		return r
	}

	if r.root == nil || r.Len() == 0 {
		return FromString(text)
	}

	if offset <= 0 {
		return FromString(text).Concat(r)
	}

	if offset >= r.Len() {
		return r.Concat(FromString(text))
	}

	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes text in the char range [start, end).
// Returns a new rope; original is unchanged.
func (r Rope) Delete(start, end CharOffset) Rope {
	if r.root == nil || start >= end {
		return r
	}

	ropeLen := r.Len()
	if start < 0 {
		start = 0
	}
	if start >= ropeLen {
		return r
	}
	if end > ropeLen {
		end = ropeLen
	}

	if start == 0 && end >= ropeLen {
		return New()
	}
	if start == 0 {
		_, right := r.Split(end)
		return right
	}
	if end >= ropeLen {
		left, _ := r.Split(start)
		return left
	}

	left, temp := r.Split(start)
	_, right := temp.Split(end - start)

	return left.Concat(right)
}

// Replace replaces text in the char range [start, end) with new text.
// Returns a new rope; original is unchanged.
func (r Rope) Replace(start, end CharOffset, text string) Rope {
	if start >= end && len(text) == 0 {
		return r
	}

	if start >= end {
		return r.Insert(start, text)
	}
	if len(text) == 0 {
		return r.Delete(start, end)
	}

	return r.Delete(start, end).Insert(start, text)
}

// Split splits the rope at a char offset, returning two ropes.
// Left rope contains [0, offset), right contains [offset, end).
func (r Rope) Split(offset CharOffset) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}

	leftRoot, rightRoot := r.root.split(offset)
	return Rope{root: leftRoot}, Rope{root: rightRoot}
}

// Concat concatenates two ropes.
// Returns a new rope; originals are unchanged.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}

	newRoot := concat(r.root, other.root)
	return Rope{root: newRoot}
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{Flags: FlagASCII}
	}
	return r.root.summary
}

// LineStartChar returns the char offset of the start of the given line.
// Lines are 0-indexed.
func (r Rope) LineStartChar(line int) CharOffset {
	if r.root == nil || line <= 0 {
		return 0
	}

	if line >= r.LineCount() {
		return r.Len()
	}

	return r.root.lineStart(line)
}

// LineEndChar returns the char offset of the end of the given line
// (not including the newline character).
func (r Rope) LineEndChar(line int) CharOffset {
	if r.root == nil {
		return 0
	}

	lineCount := r.LineCount()
	if line >= lineCount-1 {
		return r.Len()
	}

	// Start of the next line minus the newline.
	return r.LineStartChar(line+1) - 1
}

// LineLenChars returns the character length of the given line, not
// counting its trailing newline.
func (r Rope) LineLenChars(line int) CharOffset {
	return r.LineEndChar(line) - r.LineStartChar(line)
}

// LineText returns the text of the given line (not including newline).
func (r Rope) LineText(line int) string {
	start := r.LineStartChar(line)
	end := r.LineEndChar(line)
	return r.Slice(start, end)
}

// CharToPoint converts a char offset to a line/column position.
// Offsets past the end map to the end of the last line.
func (r Rope) CharToPoint(offset CharOffset) Point {
	if r.root == nil || offset <= 0 {
		return Point{}
	}
	if offset > r.Len() {
		offset = r.Len()
	}

	line := r.root.linesBefore(offset)
	return Point{
		Line:   line,
		Column: int(offset - r.LineStartChar(line)),
	}
}

// PointToChar converts a line/column position to a char offset.
// Columns past the end of the line clamp to the line end.
func (r Rope) PointToChar(point Point) CharOffset {
	if r.root == nil {
		return 0
	}
	if point.Line < 0 {
		return 0
	}
	if point.Line >= r.LineCount() {
		return r.Len()
	}

	lineStart := r.LineStartChar(point.Line)
	lineEnd := r.LineEndChar(point.Line)

	if CharOffset(point.Column) >= lineEnd-lineStart {
		return lineEnd
	}
	return lineStart + CharOffset(point.Column)
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// ChunkCount returns the total number of chunks in the rope.
// Useful for debugging.
func (r Rope) ChunkCount() int {
	if r.root == nil {
		return 0
	}
	return countChunks(r.root)
}

func countChunks(n *Node) int {
	if n.IsLeaf() {
		return len(n.chunks)
	}
	count := 0
	for _, child := range n.children {
		count += countChunks(child)
	}
	return count
}

// Equals returns true if two ropes contain the same text.
// This compares content, not structure.
func (r Rope) Equals(other Rope) bool {
	if r.Len() != other.Len() || r.ByteLen() != other.ByteLen() {
		return false
	}
	return r.String() == other.String()
}
