package rope

import "strings"

// Tree structure constants
const (
	// MinChildren is the minimum children per internal node (except root).
	MinChildren = 4

	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks.
// Internal nodes (height > 0) contain child node references.
type Node struct {
	height  uint8       // 0 for leaves, >0 for internal
	summary TextSummary // Aggregated metrics for entire subtree

	// Internal node fields (height > 0)
	children       []*Node
	childSummaries []TextSummary // Per-child summaries for efficient seeking

	// Leaf node fields (height == 0)
	chunks []Chunk
}

// newLeafNode creates an empty leaf node.
func newLeafNode() *Node {
	return &Node{
		height: 0,
		chunks: make([]Chunk, 0, MaxChunksPerLeaf),
	}
}

// newLeafNodeWithChunks creates a leaf node with the given chunks.
func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{
		height: 0,
		chunks: chunks,
	}
	n.recomputeSummary()
	return n
}

// newInternalNode creates an internal node with the given children.
func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	height := children[0].height + 1
	summaries := make([]TextSummary, len(children))
	var total TextSummary

	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}

	return &Node{
		height:         height,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Chars returns the character length of text in this subtree.
func (n *Node) Chars() CharOffset {
	return n.summary.Chars
}

// LineCount returns the number of lines in this subtree.
func (n *Node) LineCount() int {
	return n.summary.Lines + 1
}

// recomputeSummary recalculates the summary from children or chunks.
func (n *Node) recomputeSummary() {
	if n.IsLeaf() {
		n.summary = TextSummary{Flags: FlagASCII}
		for _, chunk := range n.chunks {
			n.summary = n.summary.Add(chunk.Summary())
		}
	} else {
		n.summary = TextSummary{Flags: FlagASCII}
		n.childSummaries = make([]TextSummary, len(n.children))
		for i, child := range n.children {
			n.childSummaries[i] = child.summary
			n.summary = n.summary.Add(child.summary)
		}
	}
}

// clone creates a shallow copy of the node.
func (n *Node) clone() *Node {
	if n.IsLeaf() {
		chunks := make([]Chunk, len(n.chunks))
		copy(chunks, n.chunks)
		return &Node{
			height:  0,
			summary: n.summary,
			chunks:  chunks,
		}
	}

	children := make([]*Node, len(n.children))
	copy(children, n.children)
	summaries := make([]TextSummary, len(n.childSummaries))
	copy(summaries, n.childSummaries)

	return &Node{
		height:         n.height,
		summary:        n.summary,
		children:       children,
		childSummaries: summaries,
	}
}

// appendTo appends all text in this subtree to the builder.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}

	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// textInRange extracts text in the char range [start, end).
func (n *Node) textInRange(start, end CharOffset) string {
	if start >= end || start >= n.Chars() {
		return ""
	}
	if end > n.Chars() {
		end = n.Chars()
	}

	var sb strings.Builder
	sb.Grow(int(end - start))
	n.appendRange(&sb, start, end)
	return sb.String()
}

// appendRange appends text in the char range to the builder.
func (n *Node) appendRange(sb *strings.Builder, start, end CharOffset) {
	if start >= end {
		return
	}

	if n.IsLeaf() {
		offset := CharOffset(0)
		for _, chunk := range n.chunks {
			chunkLen := chunk.Chars()
			chunkEnd := offset + chunkLen

			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			sliceStart := 0
			if start > offset {
				sliceStart = chunk.charToByte(start - offset)
			}
			sliceEnd := chunk.Len()
			if end < chunkEnd {
				sliceEnd = chunk.charToByte(end - offset)
			}

			sb.WriteString(chunk.String()[sliceStart:sliceEnd])
			offset = chunkEnd
		}
		return
	}

	offset := CharOffset(0)
	for i, child := range n.children {
		childLen := n.childSummaries[i].Chars
		childEnd := offset + childLen

		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := CharOffset(0)
		if start > offset {
			childStart = start - offset
		}
		childEndAdj := childLen
		if end < childEnd {
			childEndAdj = end - offset
		}

		child.appendRange(sb, childStart, childEndAdj)
		offset = childEnd
	}
}

// split splits the node at the given char offset.
// Returns two nodes: left contains [0, offset), right contains [offset, end).
func (n *Node) split(offset CharOffset) (*Node, *Node) {
	if offset <= 0 {
		return newLeafNode(), n.clone()
	}
	if offset >= n.Chars() {
		return n.clone(), newLeafNode()
	}

	if n.IsLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

// splitLeaf splits a leaf node at the given char offset.
func (n *Node) splitLeaf(offset CharOffset) (*Node, *Node) {
	var leftChunks, rightChunks []Chunk
	currentOffset := CharOffset(0)

	for _, chunk := range n.chunks {
		chunkLen := chunk.Chars()

		switch {
		case currentOffset+chunkLen <= offset:
			leftChunks = append(leftChunks, chunk)
		case currentOffset >= offset:
			rightChunks = append(rightChunks, chunk)
		default:
			left, right := chunk.Split(offset - currentOffset)
			if !left.IsEmpty() {
				leftChunks = append(leftChunks, left)
			}
			if !right.IsEmpty() {
				rightChunks = append(rightChunks, right)
			}
		}
		currentOffset += chunkLen
	}

	return newLeafNodeWithChunks(leftChunks), newLeafNodeWithChunks(rightChunks)
}

// splitInternal splits an internal node at the given char offset.
func (n *Node) splitInternal(offset CharOffset) (*Node, *Node) {
	var leftChildren, rightChildren []*Node
	currentOffset := CharOffset(0)

	for i, child := range n.children {
		childLen := n.childSummaries[i].Chars

		switch {
		case currentOffset+childLen <= offset:
			leftChildren = append(leftChildren, child)
		case currentOffset >= offset:
			rightChildren = append(rightChildren, child)
		default:
			leftChild, rightChild := child.split(offset - currentOffset)
			if leftChild.Chars() > 0 {
				leftChildren = append(leftChildren, leftChild)
			}
			if rightChild.Chars() > 0 {
				rightChildren = append(rightChildren, rightChild)
			}
		}
		currentOffset += childLen
	}

	return buildNodeFromChildren(leftChildren), buildNodeFromChildren(rightChildren)
}

// buildNodeFromChildren creates a balanced tree from a list of child nodes.
func buildNodeFromChildren(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}
	if len(children) == 1 {
		return children[0]
	}
	if len(children) <= MaxChildren {
		return newInternalNode(children)
	}

	var parents []*Node
	for i := 0; i < len(children); i += MaxChildren {
		end := i + MaxChildren
		if end > len(children) {
			end = len(children)
		}
		parents = append(parents, newInternalNode(children[i:end]))
	}

	return buildNodeFromChildren(parents)
}

// concat concatenates two nodes.
func concat(left, right *Node) *Node {
	if left == nil || left.Chars() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.Chars() == 0 {
		return left
	}

	if left.IsLeaf() && right.IsLeaf() {
		return concatLeaves(left, right)
	}

	// Bring to same height by wrapping the shorter one.
	for left.height < right.height {
		left = newInternalNode([]*Node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*Node{right})
	}

	return mergeNodes(left, right)
}

// concatLeaves concatenates two leaf nodes.
func concatLeaves(left, right *Node) *Node {
	totalChunks := len(left.chunks) + len(right.chunks)

	if totalChunks <= MaxChunksPerLeaf {
		chunks := make([]Chunk, 0, totalChunks)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeafNodeWithChunks(chunks)
	}

	return newInternalNode([]*Node{left.clone(), right.clone()})
}

// mergeNodes merges two nodes of the same height.
func mergeNodes(left, right *Node) *Node {
	if left.IsLeaf() {
		return concatLeaves(left, right)
	}

	allChildren := make([]*Node, 0, len(left.children)+len(right.children))
	allChildren = append(allChildren, left.children...)
	allChildren = append(allChildren, right.children...)

	if len(allChildren) <= MaxChildren {
		return newInternalNode(allChildren)
	}

	return buildNodeFromChildren(allChildren)
}

// findChildByChar finds the child containing the given char offset.
// Returns the child index and the offset within that child.
func (n *Node) findChildByChar(offset CharOffset) (int, CharOffset) {
	if n.IsLeaf() {
		return -1, 0
	}

	currentOffset := CharOffset(0)
	for i, summary := range n.childSummaries {
		if currentOffset+summary.Chars > offset {
			return i, offset - currentOffset
		}
		currentOffset += summary.Chars
	}

	// Offset is at or past the end.
	lastIdx := len(n.children) - 1
	return lastIdx, offset - (n.summary.Chars - n.childSummaries[lastIdx].Chars)
}

// linesBefore counts the newlines in this subtree preceding the given
// char offset.
func (n *Node) linesBefore(offset CharOffset) int {
	if offset <= 0 {
		return 0
	}
	if offset >= n.Chars() {
		return n.summary.Lines
	}

	if n.IsLeaf() {
		lines := 0
		currentOffset := CharOffset(0)
		for _, chunk := range n.chunks {
			chunkLen := chunk.Chars()
			if currentOffset+chunkLen <= offset {
				lines += chunk.Summary().Lines
				currentOffset += chunkLen
				continue
			}
			b := chunk.charToByte(offset - currentOffset)
			_, l := charsAndLinesTo(chunk.String(), b)
			return lines + l
		}
		return lines
	}

	lines := 0
	currentOffset := CharOffset(0)
	for i, child := range n.children {
		childLen := n.childSummaries[i].Chars
		if currentOffset+childLen <= offset {
			lines += n.childSummaries[i].Lines
			currentOffset += childLen
			continue
		}
		return lines + child.linesBefore(offset-currentOffset)
	}
	return lines
}

// lineStart returns the char offset of the start of the given 0-indexed
// line within this subtree. line must satisfy 0 <= line <= summary.Lines.
func (n *Node) lineStart(line int) CharOffset {
	if line <= 0 {
		return 0
	}

	if n.IsLeaf() {
		offset := CharOffset(0)
		for _, chunk := range n.chunks {
			cs := chunk.Summary()
			if cs.Lines < line {
				line -= cs.Lines
				offset += cs.Chars
				continue
			}
			// The target newline is inside this chunk.
			count := 0
			var chars CharOffset
			for _, r := range chunk.String() {
				chars++
				if r == '\n' {
					count++
					if count == line {
						return offset + chars
					}
				}
			}
			break
		}
		return n.Chars()
	}

	offset := CharOffset(0)
	for i, child := range n.children {
		cs := n.childSummaries[i]
		if cs.Lines < line {
			line -= cs.Lines
			offset += cs.Chars
			continue
		}
		return offset + child.lineStart(line)
	}
	return n.Chars()
}
