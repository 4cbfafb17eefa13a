package rope

import "unicode/utf8"

// CharOffset is an absolute character (rune) position in the rope.
// All public rope operations address text by character, never by byte.
type CharOffset int

// Point is a line/column position. Line and Column are both 0-indexed
// and Column is measured in characters.
type Point struct {
	Line   int
	Column int
}

// TextSummary holds aggregated metrics for a text span.
// It is the summary monoid for the rope tree: parent summaries are the
// Add of their children, which is what makes char and line addressing
// O(log n).
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the character (rune) count.
	Chars CharOffset

	// Lines is the number of newline characters.
	Lines int

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates all characters are ASCII (< 128).
	// When set, char offsets equal byte offsets.
	FlagASCII TextFlags = 1 << iota

	// FlagHasNewlines indicates the text contains newline characters.
	FlagHasNewlines

	// FlagHasTabs indicates the text contains tab characters.
	FlagHasTabs
)

// Add combines two summaries (monoid operation).
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}

	result := TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
		Flags: s.Flags & other.Flags & FlagASCII,
	}

	if (s.Flags|other.Flags)&FlagHasNewlines != 0 {
		result.Flags |= FlagHasNewlines
	}
	if (s.Flags|other.Flags)&FlagHasTabs != 0 {
		result.Flags |= FlagHasTabs
	}

	return result
}

// Zero returns the identity element for the summary monoid.
func (TextSummary) Zero() TextSummary {
	return TextSummary{Flags: FlagASCII}
}

// IsZero returns true if this is the zero/identity summary.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	if len(s) == 0 {
		return TextSummary{Flags: FlagASCII}
	}

	sum := TextSummary{
		Bytes: len(s),
		Flags: FlagASCII,
	}

	for _, r := range s {
		sum.Chars++
		switch {
		case r == '\n':
			sum.Lines++
			sum.Flags |= FlagHasNewlines
		case r == '\t':
			sum.Flags |= FlagHasTabs
		case r > 127:
			sum.Flags &^= FlagASCII
		}
	}

	return sum
}

// CountChars returns the number of characters in a string.
func CountChars(s string) CharOffset {
	return CharOffset(utf8.RuneCountInString(s))
}

// CountLines returns the number of newlines in a string.
func CountLines(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
		}
	}
	return count
}

// charToByte returns the byte index of the nth character in s.
// n must satisfy 0 <= n <= CountChars(s).
func charToByte(s string, n CharOffset) int {
	if n <= 0 {
		return 0
	}
	var c CharOffset
	for i := range s {
		if c == n {
			return i
		}
		c++
	}
	return len(s)
}

// charsAndLinesTo counts the characters and newlines in s[:byteEnd].
func charsAndLinesTo(s string, byteEnd int) (CharOffset, int) {
	var chars CharOffset
	lines := 0
	for _, r := range s[:byteEnd] {
		chars++
		if r == '\n' {
			lines++
		}
	}
	return chars, lines
}
