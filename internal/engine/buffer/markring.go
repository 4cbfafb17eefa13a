package buffer

import "github.com/dmoose/multimacs/internal/engine/rope"

// DefaultMarkRingCapacity is the per-buffer mark ring size.
const DefaultMarkRingCapacity = 16

// MarkRing remembers previous mark positions so set-mark with a prefix
// argument can pop back through them. Most recent mark at the front.
type MarkRing struct {
	marks    []rope.CharOffset
	capacity int
}

// NewMarkRing creates a mark ring holding at most capacity marks.
func NewMarkRing(capacity int) *MarkRing {
	if capacity < 1 {
		capacity = 1
	}
	return &MarkRing{capacity: capacity}
}

// Push records a mark position. Pushing the current front again is a
// no-op.
func (m *MarkRing) Push(pos rope.CharOffset) {
	if len(m.marks) > 0 && m.marks[0] == pos {
		return
	}
	if len(m.marks) >= m.capacity {
		m.marks = m.marks[:m.capacity-1]
	}
	m.marks = append([]rope.CharOffset{pos}, m.marks...)
}

// Pop removes and returns the most recent mark.
func (m *MarkRing) Pop() (rope.CharOffset, bool) {
	if len(m.marks) == 0 {
		return 0, false
	}
	pos := m.marks[0]
	m.marks = m.marks[1:]
	return pos, true
}

// Current returns the most recent mark without removing it.
func (m *MarkRing) Current() (rope.CharOffset, bool) {
	if len(m.marks) == 0 {
		return 0, false
	}
	return m.marks[0], true
}

// Rotate moves the front mark to the back, exposing the next older one.
func (m *MarkRing) Rotate() {
	if len(m.marks) < 2 {
		return
	}
	front := m.marks[0]
	copy(m.marks, m.marks[1:])
	m.marks[len(m.marks)-1] = front
}

// Len returns the number of stored marks.
func (m *MarkRing) Len() int { return len(m.marks) }

// IsEmpty returns true when no marks are stored.
func (m *MarkRing) IsEmpty() bool { return len(m.marks) == 0 }

// Clear discards all marks.
func (m *MarkRing) Clear() { m.marks = nil }

// AdjustAfterInsert shifts stored marks for an insertion.
func (m *MarkRing) AdjustAfterInsert(insertPos, length rope.CharOffset) {
	for i, pos := range m.marks {
		if pos >= insertPos {
			m.marks[i] = pos + length
		}
	}
}

// AdjustAfterDelete shifts stored marks for the deletion of [start, end).
func (m *MarkRing) AdjustAfterDelete(start, end rope.CharOffset) {
	length := end - start
	for i, pos := range m.marks {
		switch {
		case pos >= end:
			m.marks[i] = pos - length
		case pos > start:
			m.marks[i] = start
		}
	}
}
