package keybind

import (
	"strings"
	"unicode/utf8"
)

// Kind classifies what a fed chord resolved to.
type Kind uint8

const (
	// KindCommand means a full binding was matched.
	KindCommand Kind = iota
	// KindSelfInsert means the chord is literal text to insert.
	KindSelfInsert
	// KindPending means the chord starts or continues a prefix
	// sequence and more input is needed.
	KindPending
	// KindUnbound means the sequence matches nothing.
	KindUnbound
)

// Binding is the result of feeding one chord.
type Binding struct {
	Kind      Kind
	Command   string
	PrefixArg *int
	Arg       string // literal text for KindSelfInsert
	Sequence  string // the consumed sequence, for echo/error display
}

// Resolver turns chord sequences into commands. It carries the state
// between events: the pending prefix sequence and the numeric argument
// being accumulated.
type Resolver struct {
	bindings map[string]string
	prefixes map[string]bool

	pending   []string
	prefixArg *int
	inDigits  bool
}

// NewResolver builds a resolver from sequence → command bindings.
// Overrides with an empty command name remove the binding.
func NewResolver(bindings map[string]string) *Resolver {
	r := &Resolver{
		bindings: make(map[string]string, len(bindings)),
		prefixes: make(map[string]bool),
	}
	for seq, cmd := range bindings {
		if cmd == "" {
			continue
		}
		r.bindings[seq] = cmd
		chords := strings.Fields(seq)
		for i := 1; i < len(chords); i++ {
			r.prefixes[strings.Join(chords[:i], " ")] = true
		}
	}
	return r
}

// Pending returns the chords consumed so far in an unfinished
// sequence, for echoing "C-x-" style feedback.
func (r *Resolver) Pending() string {
	return strings.Join(r.pending, " ")
}

// Reset drops any partial sequence and numeric argument.
func (r *Resolver) Reset() {
	r.pending = nil
	r.prefixArg = nil
	r.inDigits = false
}

// Feed consumes one chord and reports what it resolved to. The
// resolver's numeric argument state survives KindPending results and
// is attached to (and cleared by) the final resolution.
func (r *Resolver) Feed(chord string) Binding {
	// C-g cancels everything, including a half-typed prefix.
	if chord == "C-g" {
		r.Reset()
		return Binding{Kind: KindCommand, Command: "keyboard-quit", Sequence: chord}
	}

	if len(r.pending) == 0 {
		if chord == "C-u" {
			r.bumpUniversalArg()
			return Binding{Kind: KindPending, Sequence: "C-u"}
		}
		// Meta digits start an argument; plain digits only continue
		// one (so typing "5" with no argument pending inserts it).
		if d, ok := argDigit(chord); ok && (r.prefixArg != nil || strings.HasPrefix(chord, "M-")) {
			r.pushDigit(d)
			return Binding{Kind: KindPending, Sequence: chord}
		}
	}

	r.pending = append(r.pending, chord)
	seq := strings.Join(r.pending, " ")

	if cmd, ok := r.bindings[seq]; ok {
		arg := r.takeArg()
		r.pending = nil
		return Binding{Kind: KindCommand, Command: cmd, PrefixArg: arg, Sequence: seq}
	}
	if r.prefixes[seq] {
		return Binding{Kind: KindPending, Sequence: seq}
	}
	if len(r.pending) == 1 && isLiteral(chord) {
		arg := r.takeArg()
		r.pending = nil
		text := chord
		if chord == "SPC" {
			text = " "
		}
		return Binding{Kind: KindSelfInsert, Command: "self-insert", PrefixArg: arg, Arg: text, Sequence: seq}
	}

	r.Reset()
	return Binding{Kind: KindUnbound, Sequence: seq}
}

// bumpUniversalArg implements C-u: 4, then 16, then 64.
func (r *Resolver) bumpUniversalArg() {
	n := 4
	if r.prefixArg != nil && !r.inDigits {
		n = *r.prefixArg * 4
	}
	r.prefixArg = &n
	r.inDigits = false
}

func (r *Resolver) pushDigit(d int) {
	n := d
	if r.inDigits && r.prefixArg != nil {
		n = *r.prefixArg*10 + d
	}
	r.prefixArg = &n
	r.inDigits = true
}

func (r *Resolver) takeArg() *int {
	arg := r.prefixArg
	r.prefixArg = nil
	r.inDigits = false
	return arg
}

// argDigit recognizes "5" and "M-5" as numeric argument digits.
func argDigit(chord string) (int, bool) {
	s := strings.TrimPrefix(chord, "M-")
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return int(s[0] - '0'), true
	}
	return 0, false
}

// isLiteral reports whether the chord is a plain printable character
// with no modifiers.
func isLiteral(chord string) bool {
	if chord == "SPC" {
		return true
	}
	r, size := utf8.DecodeRuneInString(chord)
	return size == len(chord) && r != utf8.RuneError && r != ' '
}
