// Package killring implements the bounded ring of killed text shared by
// every buffer in the process.
//
// Consecutive kills merge into the front entry (appending for forward
// kills, prepending for backward kills) while the lastWasKill flag is
// set; the command layer clears the flag whenever a non-kill command
// runs. Yanking never mutates the ring; yank-pop advances the yank
// pointer around it.
package killring

// DefaultCapacity is the ring size used when none is configured.
const DefaultCapacity = 60

// Ring is a bounded ring of killed text. The most recent kill is at the
// front. Not safe for concurrent use.
type Ring struct {
	entries     []string // front at index 0
	capacity    int
	yankIndex   int
	lastWasKill bool
}

// New creates a ring holding at most capacity entries.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Push adds killed text to the ring. When appendMerge is set and the
// previous command was also a kill, text is appended to the front entry
// instead of starting a new one. Empty text is ignored.
func (r *Ring) Push(text string, appendMerge bool) {
	if text == "" {
		return
	}

	if appendMerge && r.lastWasKill && len(r.entries) > 0 {
		r.entries[0] += text
	} else {
		r.pushFront(text)
	}

	r.yankIndex = 0
	r.lastWasKill = true
}

// PushPrepend adds killed text, merging before the front entry when the
// previous command was also a kill. Used by backward kills so the front
// entry reads in buffer order. Empty text is ignored.
func (r *Ring) PushPrepend(text string) {
	if text == "" {
		return
	}

	if r.lastWasKill && len(r.entries) > 0 {
		r.entries[0] = text + r.entries[0]
	} else {
		r.pushFront(text)
	}

	r.yankIndex = 0
	r.lastWasKill = true
}

func (r *Ring) pushFront(text string) {
	if len(r.entries) >= r.capacity {
		r.entries = r.entries[:r.capacity-1]
	}
	r.entries = append([]string{text}, r.entries...)
}

// Yank returns the most recent kill without mutating the ring.
func (r *Ring) Yank() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	return r.entries[0], true
}

// Current returns the entry at the yank pointer.
func (r *Ring) Current() (string, bool) {
	if r.yankIndex >= len(r.entries) {
		return "", false
	}
	return r.entries[r.yankIndex], true
}

// YankPop advances the yank pointer to the next older entry, wrapping
// around to the newest, and returns that entry.
func (r *Ring) YankPop() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	r.yankIndex = (r.yankIndex + 1) % len(r.entries)
	return r.entries[r.yankIndex], true
}

// ResetYankPointer points the next yank-pop cycle back at the front.
func (r *Ring) ResetYankPointer() {
	r.yankIndex = 0
}

// SetLastWasKill records whether the command just executed was a kill.
func (r *Ring) SetLastWasKill(wasKill bool) {
	r.lastWasKill = wasKill
}

// LastWasKill reports whether the previous command was a kill.
func (r *Ring) LastWasKill() bool {
	return r.lastWasKill
}

// Len returns the number of entries in the ring.
func (r *Ring) Len() int {
	return len(r.entries)
}

// IsEmpty returns true if nothing has been killed yet.
func (r *Ring) IsEmpty() bool {
	return len(r.entries) == 0
}

// Entries returns a copy of the ring contents, newest first.
func (r *Ring) Entries() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
