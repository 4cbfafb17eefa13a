package keybind

import "testing"

func feed(t *testing.T, r *Resolver, chords ...string) Binding {
	t.Helper()
	var b Binding
	for _, c := range chords {
		b = r.Feed(c)
	}
	return b
}

func TestSingleChordBinding(t *testing.T) {
	r := NewResolver(DefaultBindings())
	b := r.Feed("C-f")
	if b.Kind != KindCommand || b.Command != "forward-char" {
		t.Fatalf("C-f = (%v, %q)", b.Kind, b.Command)
	}
	if b.PrefixArg != nil {
		t.Fatal("unexpected prefix arg")
	}
}

func TestPrefixSequence(t *testing.T) {
	r := NewResolver(DefaultBindings())

	b := r.Feed("C-x")
	if b.Kind != KindPending {
		t.Fatalf("C-x kind = %v, want pending", b.Kind)
	}
	if got := r.Pending(); got != "C-x" {
		t.Fatalf("Pending() = %q", got)
	}

	b = r.Feed("C-s")
	if b.Kind != KindCommand || b.Command != "save-buffer" {
		t.Fatalf("C-x C-s = (%v, %q)", b.Kind, b.Command)
	}
	if got := r.Pending(); got != "" {
		t.Fatalf("Pending() after match = %q", got)
	}
}

func TestThreeChordSequence(t *testing.T) {
	r := NewResolver(DefaultBindings())
	if b := r.Feed("M-g"); b.Kind != KindPending {
		t.Fatalf("M-g kind = %v", b.Kind)
	}
	b := r.Feed("g")
	if b.Kind != KindCommand || b.Command != "goto-line" {
		t.Fatalf("M-g g = (%v, %q)", b.Kind, b.Command)
	}
}

func TestUnboundSequence(t *testing.T) {
	r := NewResolver(DefaultBindings())
	b := feed(t, r, "C-x", "C-z")
	if b.Kind != KindUnbound {
		t.Fatalf("kind = %v, want unbound", b.Kind)
	}
	if b.Sequence != "C-x C-z" {
		t.Fatalf("sequence = %q", b.Sequence)
	}
	// The resolver recovered; the next chord starts fresh.
	if b := r.Feed("C-f"); b.Command != "forward-char" {
		t.Fatalf("after unbound, C-f = %q", b.Command)
	}
}

func TestSelfInsertLiteral(t *testing.T) {
	r := NewResolver(DefaultBindings())

	b := r.Feed("a")
	if b.Kind != KindSelfInsert || b.Arg != "a" {
		t.Fatalf("a = (%v, %q)", b.Kind, b.Arg)
	}

	b = r.Feed("é")
	if b.Kind != KindSelfInsert || b.Arg != "é" {
		t.Fatalf("é = (%v, %q)", b.Kind, b.Arg)
	}

	b = r.Feed("SPC")
	if b.Kind != KindSelfInsert || b.Arg != " " {
		t.Fatalf("SPC = (%v, %q)", b.Kind, b.Arg)
	}
}

func TestUniversalArgument(t *testing.T) {
	r := NewResolver(DefaultBindings())

	b := feed(t, r, "C-u", "C-f")
	if b.Command != "forward-char" || b.PrefixArg == nil || *b.PrefixArg != 4 {
		t.Fatalf("C-u C-f = (%q, %v)", b.Command, b.PrefixArg)
	}

	b = feed(t, r, "C-u", "C-u", "C-f")
	if b.PrefixArg == nil || *b.PrefixArg != 16 {
		t.Fatalf("C-u C-u C-f arg = %v, want 16", b.PrefixArg)
	}

	// The argument does not leak into the next command.
	if b = r.Feed("C-f"); b.PrefixArg != nil {
		t.Fatal("prefix arg leaked")
	}
}

func TestUniversalArgumentDigits(t *testing.T) {
	r := NewResolver(DefaultBindings())
	b := feed(t, r, "C-u", "1", "2", "C-n")
	if b.Command != "next-line" || b.PrefixArg == nil || *b.PrefixArg != 12 {
		t.Fatalf("C-u 1 2 C-n = (%q, %v)", b.Command, b.PrefixArg)
	}
}

func TestMetaDigits(t *testing.T) {
	r := NewResolver(DefaultBindings())
	b := feed(t, r, "M-5", "0", "C-f")
	if b.PrefixArg == nil || *b.PrefixArg != 50 {
		t.Fatalf("M-5 0 C-f arg = %v, want 50", b.PrefixArg)
	}
}

func TestPlainDigitSelfInserts(t *testing.T) {
	r := NewResolver(DefaultBindings())
	b := r.Feed("7")
	if b.Kind != KindSelfInsert || b.Arg != "7" {
		t.Fatalf("7 = (%v, %q)", b.Kind, b.Arg)
	}
}

func TestPrefixArgToSelfInsert(t *testing.T) {
	r := NewResolver(DefaultBindings())
	b := feed(t, r, "C-u", "-")
	if b.Kind != KindSelfInsert || b.Arg != "-" || b.PrefixArg == nil || *b.PrefixArg != 4 {
		t.Fatalf("C-u - = (%v, %q, %v)", b.Kind, b.Arg, b.PrefixArg)
	}
}

func TestKeyboardQuitCancelsPrefix(t *testing.T) {
	r := NewResolver(DefaultBindings())
	r.Feed("C-x")
	b := r.Feed("C-g")
	if b.Kind != KindCommand || b.Command != "keyboard-quit" {
		t.Fatalf("C-x C-g = (%v, %q)", b.Kind, b.Command)
	}
	if got := r.Pending(); got != "" {
		t.Fatalf("Pending() after quit = %q", got)
	}
}

func TestConfigOverridesAndUnbinding(t *testing.T) {
	bindings := DefaultBindings()
	bindings["C-z"] = "undo"
	bindings["C-t"] = "" // unbind transpose
	r := NewResolver(bindings)

	if b := r.Feed("C-z"); b.Command != "undo" {
		t.Fatalf("C-z = %q", b.Command)
	}
	if b := r.Feed("C-t"); b.Kind != KindUnbound {
		t.Fatalf("C-t kind = %v, want unbound", b.Kind)
	}
}

func TestQuitCommandBound(t *testing.T) {
	r := NewResolver(DefaultBindings())
	b := feed(t, r, "C-x", "C-c")
	if b.Kind != KindCommand || b.Command != QuitCommand {
		t.Fatalf("C-x C-c = (%v, %q)", b.Kind, b.Command)
	}
}
