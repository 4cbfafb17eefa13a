package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestChordOf(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"uppercase rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), "A"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "SPC"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), "M-f"},
		{"alt space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModAlt), "M-SPC"},
		{"alt shifted rune", tcell.NewEventKey(tcell.KeyRune, '<', tcell.ModAlt), "M-<"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl), "C-f"},
		{"ctrl x", tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), "C-x"},
		{"ctrl space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), "C-SPC"},
		{"ctrl underscore", tcell.NewEventKey(tcell.KeyCtrlUnderscore, 0, tcell.ModCtrl), "C-_"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "RET"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "TAB"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "DEL"},
		{"alt backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModAlt), "M-DEL"},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), "<delete>"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "ESC"},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "<right>"},
		{"shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), "S-<right>"},
		{"shift home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModShift), "S-<home>"},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), "<prior>"},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "<next>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChordOf(tt.ev); got != tt.want {
				t.Errorf("ChordOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
