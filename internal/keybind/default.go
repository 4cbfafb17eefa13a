package keybind

// QuitCommand is the pseudo-command bound to C-x C-c. It is handled by
// the frontend loop, not the command registry.
const QuitCommand = "quit"

// DefaultBindings returns the stock Emacs-style keymap. Config keymap
// entries are merged over it.
func DefaultBindings() map[string]string {
	return map[string]string{
		// Character and line motion.
		"C-f":       "forward-char",
		"C-b":       "backward-char",
		"C-n":       "next-line",
		"C-p":       "previous-line",
		"C-a":       "move-beginning-of-line",
		"C-e":       "move-end-of-line",
		"M-f":       "forward-word",
		"M-b":       "backward-word",
		"M-<":       "beginning-of-buffer",
		"M->":       "end-of-buffer",
		"M-g g":     "goto-line",
		"<right>":   "forward-char",
		"<left>":    "backward-char",
		"<down>":    "next-line",
		"<up>":      "previous-line",
		"<home>":    "move-beginning-of-line",
		"<end>":     "move-end-of-line",
		"S-<right>": "forward-char-shift",
		"S-<left>":  "backward-char-shift",
		"S-<down>":  "next-line-shift",
		"S-<up>":    "previous-line-shift",
		"S-<home>":  "move-beginning-of-line-shift",
		"S-<end>":   "move-end-of-line-shift",

		// Editing.
		"RET":      "newline",
		"C-o":      "open-line",
		"C-d":      "delete-char",
		"<delete>": "delete-char",
		"DEL":      "delete-backward-char",
		"C-t":      "transpose-chars",
		"C-x C-u":  "upcase-region",
		"C-x C-l":  "downcase-region",

		// Kill and yank.
		"C-k":   "kill-line",
		"M-d":   "kill-word",
		"M-DEL": "backward-kill-word",
		"C-w":   "kill-region",
		"M-w":   "copy-region-as-kill",
		"C-y":   "yank",
		"M-y":   "yank-pop",

		// Mark.
		"C-SPC":   "set-mark-command",
		"C-x C-x": "exchange-point-and-mark",
		"C-x h":   "mark-whole-buffer",

		// Undo.
		"C-/":   "undo",
		"C-_":   "undo",
		"C-x u": "undo",

		// Multiple cursors.
		"C-c d": "spawn-cursors-at-word-matches",
		"C-c c": "clear-multiple-cursors",

		// Buffers and files.
		"C-x b":   "switch-to-buffer",
		"C-x o":   "next-buffer",
		"C-x k":   "kill-buffer",
		"C-x C-b": "list-buffers",
		"C-x C-f": "find-file",
		"C-x C-s": "save-buffer",
		"C-x C-w": "write-file",
		"C-x C-c": QuitCommand,
	}
}
