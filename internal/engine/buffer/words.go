package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmoose/multimacs/internal/engine/rope"
)

// IsWordChar reports whether r belongs to a word: letters, digits, and
// underscore.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordBoundaryForward returns the offset just past the end of the next
// word at or after start.
func WordBoundaryForward(t rope.Rope, start rope.CharOffset) rope.CharOffset {
	length := t.Len()
	pos := start
	if pos >= length {
		return length
	}

	for pos < length {
		r, _ := t.CharAt(pos)
		if IsWordChar(r) {
			break
		}
		pos++
	}
	for pos < length {
		r, _ := t.CharAt(pos)
		if !IsWordChar(r) {
			break
		}
		pos++
	}
	return pos
}

// WordBoundaryBackward returns the offset of the start of the previous
// word before start.
func WordBoundaryBackward(t rope.Rope, start rope.CharOffset) rope.CharOffset {
	length := t.Len()
	if length == 0 {
		return 0
	}
	pos := start
	if pos > length {
		pos = length
	}
	if pos == 0 {
		return 0
	}

	pos--
	for pos > 0 {
		r, _ := t.CharAt(pos)
		if IsWordChar(r) {
			break
		}
		pos--
	}
	for pos > 0 {
		r, _ := t.CharAt(pos - 1)
		if !IsWordChar(r) {
			break
		}
		pos--
	}
	return pos
}

// WordAt returns the span of the word at pos and its text. A position
// on a word char, or just past a word's last char, counts as touching
// that word; ok is false otherwise.
func WordAt(t rope.Rope, pos rope.CharOffset) (Span, string, bool) {
	length := t.Len()
	p := pos
	if p > length {
		p = length
	}

	onWord := false
	if p < length {
		if r, ok := t.CharAt(p); ok && IsWordChar(r) {
			onWord = true
		}
	}
	if !onWord && p > 0 {
		if r, ok := t.CharAt(p - 1); ok && IsWordChar(r) {
			p--
			onWord = true
		}
	}
	if !onWord {
		return Span{}, "", false
	}

	start := p
	for start > 0 {
		r, _ := t.CharAt(start - 1)
		if !IsWordChar(r) {
			break
		}
		start--
	}
	end := p
	for end < length {
		r, _ := t.CharAt(end)
		if !IsWordChar(r) {
			break
		}
		end++
	}

	sp := Span{Start: start, End: end}
	return sp, t.Slice(start, end), true
}

// FindOccurrences returns the char span of every occurrence of needle,
// including overlapping ones, in ascending order.
func FindOccurrences(t rope.Rope, needle string) []Span {
	if needle == "" {
		return nil
	}

	haystack := t.String()
	needleChars := rope.CountChars(needle)

	var spans []Span
	var searchFrom int              // byte offset
	var charsBefore rope.CharOffset // chars before searchFrom

	for {
		i := strings.Index(haystack[searchFrom:], needle)
		if i < 0 {
			break
		}
		charsBefore += rope.CountChars(haystack[searchFrom : searchFrom+i])
		spans = append(spans, Span{Start: charsBefore, End: charsBefore + needleChars})

		// Advance one char so overlapping matches are found too.
		_, size := utf8.DecodeRuneInString(haystack[searchFrom+i:])
		searchFrom += i + size
		charsBefore++
	}
	return spans
}
