package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ChordOf translates a tcell key event into the chord notation the
// keybinding resolver consumes ("C-x", "M-f", "S-<right>", "a").
// Returns "" for events with no chord representation.
func ChordOf(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	alt := mods&tcell.ModAlt != 0
	shift := mods&tcell.ModShift != 0

	if ev.Key() == tcell.KeyRune {
		base := string(ev.Rune())
		if ev.Rune() == ' ' {
			base = "SPC"
		}
		if alt {
			return "M-" + base
		}
		return base
	}

	var base string
	switch k := ev.Key(); k {
	case tcell.KeyEnter:
		base = "RET"
	case tcell.KeyTab:
		base = "TAB"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		base = "DEL"
	case tcell.KeyDelete:
		base = "<delete>"
	case tcell.KeyEscape:
		base = "ESC"
	case tcell.KeyCtrlSpace:
		base = "C-SPC"
	case tcell.KeyCtrlUnderscore:
		base = "C-_"
	case tcell.KeyRight:
		base = shifted("<right>", shift)
	case tcell.KeyLeft:
		base = shifted("<left>", shift)
	case tcell.KeyUp:
		base = shifted("<up>", shift)
	case tcell.KeyDown:
		base = shifted("<down>", shift)
	case tcell.KeyHome:
		base = shifted("<home>", shift)
	case tcell.KeyEnd:
		base = shifted("<end>", shift)
	case tcell.KeyPgUp:
		base = "<prior>"
	case tcell.KeyPgDn:
		base = "<next>"
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			base = "C-" + string(rune('a'+int(k-tcell.KeyCtrlA)))
		}
	}
	if base == "" {
		return ""
	}
	if alt && !strings.HasPrefix(base, "M-") {
		return "M-" + base
	}
	return base
}

func shifted(name string, shift bool) string {
	if shift {
		return "S-" + name
	}
	return name
}
